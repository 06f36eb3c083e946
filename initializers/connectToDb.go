package initializers

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectToDB opens the store. MySQL is the default; DB_DIALECT=sqlite
// switches to a local SQLite file. All entity references are soft, so
// FK constraint creation stays disabled for both dialects.
func ConnectToDB() {
	var dialector gorm.Dialector
	if os.Getenv("DB_DIALECT") == "sqlite" {
		storage := os.Getenv("DB_DSN")
		if storage == "" {
			storage = "database.sqlite"
		}
		dialector = sqlite.Open(storage)
	} else {
		dialector = mysql.Open(os.Getenv("DB_DSN"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	DB = db
}
