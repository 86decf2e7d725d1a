package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	_ "github.com/jackc/pgx/v5/stdlib"

	"pacs/internal/auth"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample departments, employees, card readers and the first superuser.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := sqlx.Connect("pgx", cfg.Database.Source)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		departments := []string{
			"Human Resources",
			"Accounting and Finance",
			"IT",
			"Marketing",
			"Administration",
		}
		for _, name := range departments {
			var exists int
			if err := db.QueryRow("SELECT 1 FROM departments WHERE name = $1", name).Scan(&exists); err == nil {
				continue
			}
			if _, err := db.Exec("INSERT INTO departments (name) VALUES ($1)", name); err != nil {
				log.Fatalf("failed to insert department %s: %v", name, err)
			}
			fmt.Println("Seeded department:", name)
		}

		today := time.Now().Format("2006-01-02")
		tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

		employees := []struct {
			Name    string
			Surname string
			Dept    int64
			CardID  int64
		}{
			{"Anna", "Karenina", 1, 11111111},
			{"Fedor", "Dostoevskyi", 2, 2222222},
			{"Aleksander", "Pushkin", 3, 3333333},
		}
		for _, e := range employees {
			var exists int
			if err := db.QueryRow("SELECT 1 FROM employees WHERE card_id = $1", e.CardID).Scan(&exists); err == nil {
				continue
			}
			if _, err := db.Exec(
				"INSERT INTO employees (name, surname, department_id, card_id, card_start_date, card_finish_date) VALUES ($1, $2, $3, $4, $5, $6)",
				e.Name, e.Surname, e.Dept, e.CardID, today, tomorrow); err != nil {
				log.Fatalf("failed to insert employee %s: %v", e.Surname, err)
			}
			fmt.Println("Seeded employee:", e.Name, e.Surname)
		}

		devices := []struct {
			Name   string
			Imei   string
			Dept   int64
			Opened bool
		}{
			{"Contact reader №1", "111111qwerty", 1, false},
			{"Contact reader №2", "222222qwerty", 2, false},
			{"Contact reader №3", "333333qwerty", 3, false},
			{"Contact reader №4", "444444qwerty", 4, false},
			{"Contact reader №5", "555555qwerty", 5, true},
		}
		for _, d := range devices {
			var exists int
			if err := db.QueryRow("SELECT 1 FROM devices WHERE imei = $1", d.Imei).Scan(&exists); err == nil {
				continue
			}
			if _, err := db.Exec(
				"INSERT INTO devices (name, imei, route, department_id, opened) VALUES ($1, $2, 'enter', $3, $4)",
				d.Name, d.Imei, d.Dept, d.Opened); err != nil {
				log.Fatalf("failed to insert device %s: %v", d.Imei, err)
			}
			fmt.Println("Seeded device:", d.Name)
		}

		grants := []struct {
			CardID int64
			Imei   string
		}{
			{11111111, "111111qwerty"},
			{11111111, "222222qwerty"},
			{2222222, "222222qwerty"},
			{11111111, "333333qwerty"},
			{3333333, "333333qwerty"},
			{11111111, "444444qwerty"},
		}
		for _, g := range grants {
			var employeeID, deviceID int64
			if err := db.QueryRow("SELECT id FROM employees WHERE card_id = $1", g.CardID).Scan(&employeeID); err != nil {
				log.Fatalf("employee with card %d not found: %v", g.CardID, err)
			}
			if err := db.QueryRow("SELECT id FROM devices WHERE imei = $1", g.Imei).Scan(&deviceID); err != nil {
				log.Fatalf("device %s not found: %v", g.Imei, err)
			}
			var exists int
			if err := db.QueryRow("SELECT 1 FROM access_grants WHERE employee_id = $1 AND device_id = $2", employeeID, deviceID).Scan(&exists); err == nil {
				continue
			}
			if _, err := db.Exec("INSERT INTO access_grants (employee_id, device_id) VALUES ($1, $2)", employeeID, deviceID); err != nil {
				log.Fatalf("failed to grant access %d/%s: %v", g.CardID, g.Imei, err)
			}
		}
		fmt.Println("Seeded access grants")

		var exists int
		if err := db.QueryRow("SELECT 1 FROM users WHERE email = $1", cfg.Security.FirstSuperuser).Scan(&exists); err != nil {
			hash, err := auth.HashPassword(cfg.Security.FirstSuperuserPassword, cfg.Security.BCryptCost)
			if err != nil {
				log.Fatalf("failed to hash superuser password: %v", err)
			}
			if _, err := db.Exec(
				"INSERT INTO users (email, password_hash, is_superuser) VALUES ($1, $2, true)",
				cfg.Security.FirstSuperuser, hash); err != nil {
				log.Fatalf("failed to insert superuser: %v", err)
			}
			fmt.Println("Seeded first superuser:", cfg.Security.FirstSuperuser)
		}
	},
}
