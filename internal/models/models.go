// Package models содержит типы запросов и ответов HTTP API.
package models

// KeyRequest — нажатие клавиши калькулятора.
type KeyRequest struct {
	Key string `json:"key"`
}

// SessionResponse — состояние дисплея сессии после события.
type SessionResponse struct {
	ID         string `json:"id"`
	Display    string `json:"display"`
	ClearLabel string `json:"clear_label"`
}

// User — учётная запись пользователя сервиса.
type User struct {
	ID       int    `json:"id"`
	Login    string `json:"login"`
	Password string `json:"-"` // хеш bcrypt, в JSON не попадает
}

// AuthRequest — запрос регистрации или входа.
type AuthRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AuthResponse — ответ после успешной аутентификации.
type AuthResponse struct {
	Token string `json:"token"`
}
