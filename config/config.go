package config

import (
    "os"
    "strconv"
)

// Environment helpers shared across the config package and main.

func GetEnvWithDefault(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}

func GetEnvAsInt(key string, defaultValue int) int {
    if value := os.Getenv(key); value != "" {
        if intValue, err := strconv.Atoi(value); err == nil {
            return intValue
        }
    }
    return defaultValue
}

func getMongoURI() string {
    return GetEnvWithDefault("MONGO_URI", "mongodb://localhost:27017")
}

func getMongoDBName() string {
    return GetEnvWithDefault("MONGO_DB_NAME", "train_db")
}
