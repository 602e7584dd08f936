package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"deskcalc/internal/api"
	"deskcalc/internal/auth"
	"deskcalc/internal/calculator"
	"deskcalc/internal/database"
	"deskcalc/internal/session"
)

// getEnvOrDefault возвращает значение переменной окружения или значение
// по умолчанию, если переменная не найдена.
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func main() {
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err == nil {
			break
		}
	}

	log.Printf("Время жизни токена: %d минут", auth.GetTokenExpiration())

	db := database.GetDB()
	defer db.Close()

	mgr := session.NewManager()
	mgr.SetEventHook(func(sessionID, event string, s calculator.Snapshot) {
		log.Printf("Сессия %s: событие %s, ввод=%s", sessionID, event, s.Input)
	})

	r := mux.NewRouter()

	// Обслуживание статической клавиатуры
	webDir := filepath.Join("web", "static")
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(webDir, "index.html"))
	})
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(webDir))))

	// API калькулятора
	r.PathPrefix("/api/v1/").Handler(http.StripPrefix("/api/v1", api.SetupRouter(mgr)))

	port := getEnvOrDefault("CALCD_PORT", "8082")
	addr := fmt.Sprintf(":%s", port)

	log.Printf("Сервер запущен на http://localhost:%s", port)
	log.Fatal(http.ListenAndServe(addr, r))
}
