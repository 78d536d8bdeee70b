//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/jsphweid/jianpu/cmd"
	"github.com/jsphweid/jianpu/db"
	"github.com/jsphweid/jianpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Needs DynamoDB Local with a "jianpu-conversions" table (hash key PK).
var archive *db.Archive

func TestMain(m *testing.M) {
	var err error
	archive, err = db.Connect()
	if err != nil {
		panic(err.Error())
	}

	exitVal := m.Run()

	os.Exit(exitVal)
}

func TestConvertAndArchiveE2E(t *testing.T) {
	body, err := os.ReadFile("../testdata/ode.musicxml")
	require.NoError(t, err)

	server := httptest.NewServer(cmd.NewServer(0, archive).Handler())
	defer server.Close()

	resp, err := http.Post(server.URL+"/convert", "application/xml", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	respBody, _ := io.ReadAll(resp.Body)
	var converted model.ConvertResponse
	require.NoError(t, json.Unmarshal(respBody, &converted))
	assert.True(strings.HasPrefix(converted.Text, "简谱转换结果:\n"))

	stored, ok, err := archive.Get(converted.Id)
	require.NoError(t, err)
	assert.True(ok)
	assert.Equal(converted.Text, stored.Text)
	assert.Equal("Ode to Joy", stored.Source)
}
