package database

import (
	"log"

	"bondpos-backend/internal/config"
	"bondpos-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init: Postgres bağlantısını açar ve şemayı migrate eder.
// Sadece DATABASE_DSN tanımlıyken çağrılır; varsayılan kurulum
// bellek içi store ile çalışır ve veritabanına hiç dokunmaz.
func Init(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
		&models.ExpenseCategory{},
		&models.Expense{},
		&models.Purchase{},
		&models.Employee{},
		&models.Attendance{},
		&models.Leave{},
		&models.Payroll{},
		&models.StaffSalary{},
		&models.Settings{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
	return db
}
