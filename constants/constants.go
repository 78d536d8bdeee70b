package constants

import (
	"os"
	"strconv"
)

// GetOutDir is where converted files go. Empty means next to the score.
func GetOutDir() string {
	return os.Getenv("JIANPU_OUT_DIR")
}

// GetMeasuresPerLine returns 0 when unset or invalid, leaving the choice to
// the formatter's default.
func GetMeasuresPerLine() int {
	n, err := strconv.Atoi(os.Getenv("JIANPU_MEASURES_PER_LINE"))
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetDynamoRegion() string {
	region := os.Getenv("DYNAMODB_REGION")
	if region != "" {
		return region
	}
	return "localhost"
}

const ArchiveTable = "jianpu-conversions"

// request bodies above this are rejected by the server
const MaxScoreSize = 16 * 1024 * 1024

const DefaultAddr = ":8080"
