package cmd

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	WarehouseServiceURL   string
	PrintSpoolerURL       string
	KafkaHost             string
	KafkaOrderEventsTopic string
	DefaultCompany        int
	PrintJobUser          string
	PrintJobFacility      string
	PrintJobSchedule      string
	PrintJobBatchSize     int
}
