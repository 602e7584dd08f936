package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"deskcalc/internal/auth"
	"deskcalc/internal/database"
	"deskcalc/internal/models"
)

// AuthHandler обслуживает регистрацию и вход пользователей.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Register создаёт нового пользователя.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendErrorResponse(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if strings.TrimSpace(req.Login) == "" || strings.TrimSpace(req.Password) == "" {
		SendErrorResponse(w, http.StatusBadRequest, "Логин и пароль не могут быть пустыми")
		return
	}

	_, err := database.CreateUser(req.Login, req.Password)
	if err != nil {
		log.Printf("Ошибка при регистрации пользователя: %v", err)
		if strings.Contains(err.Error(), "уже существует") {
			SendErrorResponse(w, http.StatusConflict, "Пользователь с таким логином уже существует")
			return
		}
		SendErrorResponse(w, http.StatusInternalServerError, "Ошибка при регистрации")
		return
	}

	SendJSONResponse(w, http.StatusCreated, map[string]string{"status": "success"})
}

// Login проверяет учётные данные и выпускает токен.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendErrorResponse(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if strings.TrimSpace(req.Login) == "" || strings.TrimSpace(req.Password) == "" {
		SendErrorResponse(w, http.StatusBadRequest, "Логин и пароль не могут быть пустыми")
		return
	}

	user, err := database.GetUser(req.Login)
	if err != nil {
		log.Printf("Ошибка при получении пользователя: %v", err)
		SendErrorResponse(w, http.StatusInternalServerError, "Ошибка авторизации")
		return
	}
	if user == nil || !database.CheckPasswordHash(req.Password, user.Password) {
		SendErrorResponse(w, http.StatusUnauthorized, "Неверные учетные данные")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Login)
	if err != nil {
		log.Printf("Ошибка генерации токена: %v", err)
		SendErrorResponse(w, http.StatusInternalServerError, "Ошибка авторизации")
		return
	}

	SendJSONResponse(w, http.StatusOK, models.AuthResponse{Token: token})
}

// TokenInfoHandler возвращает информацию о времени жизни токена.
func TokenInfoHandler(w http.ResponseWriter, r *http.Request) {
	SendJSONResponse(w, http.StatusOK, map[string]string{
		"expirationMinutes": strconv.Itoa(auth.GetTokenExpiration()),
	})
}
