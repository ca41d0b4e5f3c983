package main

import (
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// connectDB calls open until it yields a database that answers a ping,
// waiting between failed attempts.
func connectDB(open func() (*gorm.DB, error), attempts int, wait time.Duration, sleep func(time.Duration)) (*gorm.DB, error) {
	var err error
	for i := range attempts {
		var db *gorm.DB
		db, err = open()
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, attempts, err)
		} else {
			var sqlDB *sql.DB
			sqlDB, err = db.DB()
			if err != nil {
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, attempts, err)
			} else if err = sqlDB.Ping(); err == nil {
				return db, nil
			} else {
				logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, attempts, err)
				_ = sqlDB.Close()
			}
		}

		if i < attempts-1 {
			sleep(wait)
		}
	}
	return nil, err
}
