package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"institute-backend/models"
	"institute-backend/services"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "institute_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	return SeedDatabase(DB)
}

// Migrate creates/updates the schema in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Certificate{},
		&models.ComputerCourse{},
		&models.ComputerLearningPoint{},
		&models.TypingCourse{},
		&models.TypingLearningPoint{},
		&models.ContactMessage{},
	)
}

// SeedDatabase ensures the admin account exists and, on an empty database,
// loads the institute's course catalog. Safe to run on every boot.
func SeedDatabase(db *gorm.DB) error {
	adminUser := envOrDefault("ADMIN_USERNAME", "itsolutionsiwan")
	adminPass := envOrDefault("ADMIN_PASSWORD", "DotM,1^W9Xo3")
	if err := services.NewAuthService(db).EnsureAdmin(adminUser, adminPass); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	if err := seedComputerCourses(db); err != nil {
		return err
	}
	if err := seedTypingCourses(db); err != nil {
		return err
	}

	if strings.EqualFold(envOrDefault("SEED_DEMO_DATA", "false"), "true") {
		if err := seedDemoCertificates(db); err != nil {
			return err
		}
	}
	return nil
}

func seedComputerCourses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ComputerCourse{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	catalog := []struct {
		course models.ComputerCourse
		points []string
	}{
		{
			course: models.ComputerCourse{
				Title:       "DCA",
				FullName:    "Diploma in Computer Applications",
				Duration:    "6 months",
				Price:       "₹6,000",
				Description: "A comprehensive course covering basic computer skills including MS Office, Internet basics, and fundamental computer concepts.",
			},
			points: []string{
				"Microsoft Office Suite (Word, Excel, PowerPoint)",
				"Basic web design and internet skills",
				"Computer fundamentals and operating systems",
			},
		},
		{
			course: models.ComputerCourse{
				Title:       "ADCA",
				FullName:    "Advanced Diploma in Computer Applications",
				Duration:    "1 year",
				Price:       "₹12,000",
				Description: "Advanced computer skills including programming, web development, and specialized software applications.",
			},
			points: []string{
				"Computer Fundamental, Operating System",
				"MS-Office (Word, Excel, PowerPoint, Access)",
				"Photoshop, CorelDraw, Tally with GST",
				"Email, Internet, AI (Artificial Intelligence)",
			},
		},
		{
			course: models.ComputerCourse{
				Title:       "BCA",
				FullName:    "Bachelor of Computer Applications",
				Duration:    "3 years",
				Price:       "₹30,000/year",
				Description: "A comprehensive degree program covering all aspects of computer science and applications.",
			},
			points: []string{
				"Programming languages (C, C++, Java)",
				"Database management and system design",
				"Software development and project management",
			},
		},
		{
			course: models.ComputerCourse{
				Title:       "Tally",
				FullName:    "Tally with GST",
				Duration:    "3 months",
				Price:       "₹4,500",
				Description: "Learn complete accounting and taxation management with the latest version of Tally.",
			},
			points: []string{
				"Basic and advanced accounting concepts",
				"GST billing and compliance",
				"Financial statements and reports",
				"Inventory management",
			},
		},
		{
			course: models.ComputerCourse{
				Title:       "DTP",
				FullName:    "Desktop Publishing",
				Duration:    "3 months",
				Price:       "₹4,000",
				Description: "Master the skills of digital publishing and graphic design for print and digital media.",
			},
			points: []string{
				"Adobe InDesign and PageMaker",
				"CorelDRAW and Photoshop",
				"Layout design and typography",
				"Print production techniques",
			},
		},
	}

	svc := services.NewComputerCourseService(db)
	for i := range catalog {
		if err := svc.Create(&catalog[i].course, catalog[i].points); err != nil {
			return fmt.Errorf("seed computer course %s: %w", catalog[i].course.Title, err)
		}
	}
	log.Println("Computer courses seeded")
	return nil
}

func seedTypingCourses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.TypingCourse{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	catalog := []struct {
		course models.TypingCourse
		points []string
	}{
		{
			course: models.TypingCourse{
				Title:       "English Typing",
				Duration:    "3 months",
				Price:       "₹2,000",
				Description: "Master English typing with speed and accuracy. Perfect for office jobs and government positions.",
			},
			points: []string{
				"Touch typing techniques",
				"Speed building exercises",
				"Accuracy improvement drills",
			},
		},
		{
			course: models.TypingCourse{
				Title:       "Hindi Typing",
				Duration:    "3 months",
				Price:       "₹2,000",
				Description: "Learn Hindi typing using both Krutidev and Unicode methods for government jobs and office work.",
			},
			points: []string{
				"Krutidev and Devlys keyboard layouts",
				"Unicode Hindi typing",
				"Preparation for government typing tests",
			},
		},
		{
			course: models.TypingCourse{
				Title:       "Stenography",
				Duration:    "6 months",
				Price:       "₹5,000",
				Description: "Learn shorthand writing and transcription for secretarial and court reporting positions.",
			},
			points: []string{
				"Pitman shorthand basics",
				"Dictation and transcription practice",
				"Speed building for professional requirements",
			},
		},
	}

	svc := services.NewTypingCourseService(db)
	for i := range catalog {
		if err := svc.Create(&catalog[i].course, catalog[i].points); err != nil {
			return fmt.Errorf("seed typing course %s: %w", catalog[i].course.Title, err)
		}
	}
	log.Println("Typing courses seeded")
	return nil
}

func mustParseDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Fatalf("Error parsing seed date %q: %v", value, err)
	}
	return t
}

// seedDemoCertificates loads sample verification records for demo installs;
// idempotent per certificate number.
func seedDemoCertificates(db *gorm.DB) error {
	demo := []models.Certificate{
		{
			CertificateNumber: "ADCA-2023-1234",
			Name:              "Rahul Kumar",
			Address:           "Bihar, Siwan",
			AadharNumber:      "XXXX-XXXX-1234",
			CertificateName:   "Advanced Diploma in Computer Applications",
			IssueDate:         mustParseDate("2023-04-15"),
			PercentageScore:   85,
		},
		{
			CertificateNumber: "DCA-2023-5678",
			Name:              "Priya Sharma",
			Address:           "Bihar, Patna",
			AadharNumber:      "XXXX-XXXX-5678",
			CertificateName:   "Diploma in Computer Applications",
			IssueDate:         mustParseDate("2023-05-20"),
			PercentageScore:   78,
		},
		{
			CertificateNumber: "TALLY-2023-9012",
			Name:              "Amit Singh",
			Address:           "Bihar, Gaya",
			AadharNumber:      "XXXX-XXXX-9012",
			CertificateName:   "Tally with GST",
			IssueDate:         mustParseDate("2023-06-10"),
			PercentageScore:   92,
		},
		{
			CertificateNumber: "HINDI-2023-3456",
			Name:              "Neha Gupta",
			Address:           "Bihar, Siwan",
			AadharNumber:      "XXXX-XXXX-3456",
			CertificateName:   "Hindi Typing Course",
			IssueDate:         mustParseDate("2023-07-05"),
			PercentageScore:   88,
		},
		{
			CertificateNumber: "ENG-2023-7890",
			Name:              "Rajesh Verma",
			Address:           "Bihar, Muzaffarpur",
			AadharNumber:      "XXXX-XXXX-7890",
			CertificateName:   "English Typing Course",
			IssueDate:         mustParseDate("2023-08-15"),
			PercentageScore:   75,
		},
	}

	for i := range demo {
		var count int64
		if err := db.Model(&models.Certificate{}).
			Where("certificate_number = ?", demo[i].CertificateNumber).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&demo[i]).Error; err != nil {
			return fmt.Errorf("seed certificate %s: %w", demo[i].CertificateNumber, err)
		}
	}
	log.Println("Demo certificates seeded")
	return nil
}
