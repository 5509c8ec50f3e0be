package cmd

type Config struct {
	HTTPPort     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	SMTPAddress  string
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	AdminEmail   string
	AdminBaseURL string
}
