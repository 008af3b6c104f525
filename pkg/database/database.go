package database

import (
	"fmt"
	"log"
	"quiz_backend/internal/config"
	"quiz_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbCfg := &cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.DBName,
		dbCfg.Charset,
		dbCfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// 把驱动的唯一键冲突翻译成 gorm.ErrDuplicatedKey，供上层 errors.Is 判断
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	// 连接池：每个请求从池中取连接，结束后归还
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if dbCfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(dbCfg.MaxOpenConns)
	}
	if dbCfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(dbCfg.MaxIdleConns)
	}

	log.Println("Database connection established")

	if shouldMigrate(cfg) {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	return db, nil
}

// release 模式下默认跳过迁移，由 -migrate / -migrate-only 显式触发
func shouldMigrate(cfg *config.Config) bool {
	return cfg.ForceMigrate || cfg.Server.Mode != "release"
}

// Migrate 建表并灌入默认参考数据（分类与题目为静态数据，空表时初始化）
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Question{},
		&model.QuizAttempt{},
	)
	if err != nil {
		return err
	}

	seedReferenceData(db)
	return nil
}

func seedReferenceData(db *gorm.DB) {
	var count int64
	db.Model(&model.Category{}).Count(&count)
	if count > 0 {
		return
	}

	categories := []model.Category{
		{Name: "General Knowledge", Description: "A bit of everything"},
		{Name: "History", Description: "From ancient times to the modern era"},
		{Name: "Science", Description: "Physics, chemistry and biology"},
		{Name: "Sports", Description: "Games, records and athletes"},
	}
	for i := range categories {
		db.Create(&categories[i])
	}

	questions := []model.Question{
		{CategoryID: categories[0].ID, QuestionText: "Which planet is known as the Red Planet?",
			OptionA: "Venus", OptionB: "Mars", OptionC: "Jupiter", OptionD: "Saturn", CorrectAnswer: "b"},
		{CategoryID: categories[0].ID, QuestionText: "How many continents are there on Earth?",
			OptionA: "five", OptionB: "six", OptionC: "seven", OptionD: "eight", CorrectAnswer: "c"},
		{CategoryID: categories[1].ID, QuestionText: "In which year did World War II end?",
			OptionA: "1943", OptionB: "1944", OptionC: "1945", OptionD: "1946", CorrectAnswer: "c"},
		{CategoryID: categories[1].ID, QuestionText: "Who was the first emperor of a unified China?",
			OptionA: "Qin Shi Huang", OptionB: "Han Wudi", OptionC: "Tang Taizong", OptionD: "Kangxi", CorrectAnswer: "a"},
		{CategoryID: categories[2].ID, QuestionText: "What is the chemical symbol for gold?",
			OptionA: "Ag", OptionB: "Au", OptionC: "Fe", OptionD: "Pb", CorrectAnswer: "b"},
		{CategoryID: categories[2].ID, QuestionText: "What gas do plants absorb from the atmosphere?",
			OptionA: "Oxygen", OptionB: "Nitrogen", OptionC: "Carbon dioxide", OptionD: "Hydrogen", CorrectAnswer: "c"},
		{CategoryID: categories[3].ID, QuestionText: "How many players are on a basketball court per team?",
			OptionA: "four", OptionB: "five", OptionC: "six", OptionD: "seven", CorrectAnswer: "b"},
		{CategoryID: categories[3].ID, QuestionText: "How often are the Summer Olympic Games held?",
			OptionA: "Every 2 years", OptionB: "Every 3 years", OptionC: "Every 4 years", OptionD: "Every 5 years", CorrectAnswer: "c"},
	}
	for i := range questions {
		db.Create(&questions[i])
	}
}
