package migration

import (
	"GiveHub-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserReport{}); err != nil {
		log.Fatalf("Error migrating user report database: %v", err)
		return err
	}

	if err := db.AutoMigrate(
		&entities.Donation{},
		&entities.DonationRequest{},
		&entities.DonationReport{},
		&entities.DonationComment{},
		&entities.DonationLike{},
		&entities.DonationSave{},
	); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}

	if err := db.AutoMigrate(
		&entities.BlogPost{},
		&entities.BlogReport{},
		&entities.BlogComment{},
		&entities.BlogLike{},
		&entities.BlogSave{},
	); err != nil {
		log.Fatalf("Error migrating blog database: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities.Chat{}, &entities.Message{}); err != nil {
		log.Fatalf("Error migrating message database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
