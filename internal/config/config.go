package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	InputDir  string
	OutputDir string

	HCPCSInput    string
	ICD10CMInput  string
	ICD10WHOInput string
	LOINCInput    string
	NPIInput      string
	RxNormInput   string
	SNOMEDInput   string

	// NPISampleRows bounds the sample read when the NPI column has to be
	// found heuristically instead of by name.
	NPISampleRows int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	inputDir := getEnv("INPUT_DIR", filepath.Join(cwd, "input"))

	cfg := Config{
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "data", "medref.db")),
		InputDir:  inputDir,
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "output", "csv")),

		HCPCSInput:    getEnv("HCPCS_INPUT", filepath.Join(inputDir, "HCPC2025_OCT_ANWEB_v3.txt")),
		ICD10CMInput:  getEnv("ICD10CM_INPUT", filepath.Join(inputDir, "icd10cm_order_2025.txt")),
		ICD10WHOInput: getEnv("ICD10WHO_INPUT", filepath.Join(inputDir, "icd102019en.xml.zip")),
		LOINCInput:    getEnv("LOINC_INPUT", filepath.Join(inputDir, "Loinc.csv")),
		NPIInput:      getEnv("NPI_INPUT", filepath.Join(inputDir, "npidata_pfile_20050523-20250907.csv")),
		RxNormInput:   getEnv("RXNORM_INPUT", filepath.Join(inputDir, "npidata_pfile_20050523-20250907.csv")),
		SNOMEDInput:   getEnv("SNOMED_INPUT", filepath.Join(inputDir, "sct2_Description_Full-en_US1000124_20250301.txt")),

		NPISampleRows: getEnvInt("NPI_SAMPLE_ROWS", 5000),
	}

	return cfg, nil
}

// InputFor maps a source name to its configured input path; empty when the
// name is unknown.
func (c Config) InputFor(source string) string {
	switch source {
	case "hcpcs":
		return c.HCPCSInput
	case "icd10cm":
		return c.ICD10CMInput
	case "icd10who":
		return c.ICD10WHOInput
	case "loinc":
		return c.LOINCInput
	case "npi":
		return c.NPIInput
	case "rxnorm":
		return c.RxNormInput
	case "snomed":
		return c.SNOMEDInput
	}
	return ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
