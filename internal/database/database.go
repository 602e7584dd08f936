// Package database хранит учётные записи пользователей в sqlite.
// История нажатий и результатов сознательно не сохраняется: калькулятор
// живёт только в памяти сессии.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	_ "github.com/glebarez/go-sqlite"
	"golang.org/x/crypto/bcrypt"

	"deskcalc/internal/models"
)

var (
	db   *sql.DB
	once sync.Once
)

// GetDB возвращает экземпляр соединения с базой данных. Путь к файлу берётся
// из DB_PATH, по умолчанию ./deskcalc.db.
func GetDB() *sql.DB {
	once.Do(func() {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "./deskcalc.db"
		}

		var err error
		db, err = sql.Open("sqlite", path)
		if err != nil {
			panic(fmt.Sprintf("Не удалось подключиться к базе данных: %v", err))
		}

		createTables()
	})

	return db
}

func createTables() {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			login TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL
		)
	`)
	if err != nil {
		panic(fmt.Sprintf("Ошибка создания таблицы users: %v", err))
	}
}

// CreateUser создаёт нового пользователя с bcrypt-хешем пароля.
func CreateUser(login, password string) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM users WHERE login = ?", login).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка проверки существования пользователя: %w", err)
	}
	if count > 0 {
		return 0, fmt.Errorf("пользователь с логином %s уже существует", login)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("ошибка хеширования пароля: %w", err)
	}

	result, err := db.Exec("INSERT INTO users (login, password) VALUES (?, ?)", login, string(hashedPassword))
	if err != nil {
		return 0, fmt.Errorf("ошибка создания пользователя: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("ошибка получения ID пользователя: %w", err)
	}

	return int(id), nil
}

// GetUser возвращает пользователя по логину; nil — если такого нет.
func GetUser(login string) (*models.User, error) {
	var user models.User
	err := db.QueryRow("SELECT id, login, password FROM users WHERE login = ?", login).
		Scan(&user.ID, &user.Login, &user.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения пользователя: %w", err)
	}

	return &user, nil
}

// CheckPasswordHash сравнивает пароль и хеш пароля.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
