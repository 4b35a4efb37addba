package main

import (
	"fmt"
	"net/http"
	"os"

	"suqia/cmd"
	_ "suqia/docs"
	api "suqia/internal/adapters/in/http"
	"suqia/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Suqia Water Delivery API
//	@version		1.0
//	@description	Role based water tank delivery order management.
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	configs := getConfigs()

	db := mustOpenDB(configs)
	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, db)
	seedAdmin(db, configs, root)

	server := api.NewServer(root.TokenService(), root.NewHandlers())

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:     goDotEnvVariable("JWT_SECRET"),
		JWTTTLMinutes: goDotEnvVariable("JWT_TTL_MINUTES"),
		AdminEmail:    goDotEnvVariable("ADMIN_EMAIL"),
		AdminPassword: goDotEnvVariable("ADMIN_PASSWORD"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return db
}

func seedAdmin(db *gorm.DB, configs cmd.Config, root cmd.CompositionRoot) {
	hash, err := root.PasswordHasher().Hash(configs.AdminPassword)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}
	if err := postgres.Seed(db, configs.AdminEmail, hash); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}
