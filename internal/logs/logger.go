package logs

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

// Fields porte le contexte structuré d'une entrée : route, userID, postID...
type Fields map[string]interface{}

var logger = log.New(os.Stdout, "", 0)

func write(severity, message string, fields Fields) {
	entry := map[string]interface{}{
		"severity": severity,
		"message":  message,
		"time":     time.Now().Format(time.RFC3339),
	}
	for k, v := range fields {
		entry[k] = v
	}
	line, _ := json.Marshal(entry)
	logger.Println(string(line))
}

func Info(message string, fields Fields) {
	write("INFO", message, fields)
}

func Warn(message string, fields Fields) {
	write("WARN", message, fields)
}

func Error(message string, fields Fields) {
	write("ERROR", message, fields)
}
