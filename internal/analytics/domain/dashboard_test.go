package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDashboard(t *testing.T) {
	totals := Totals{CFE: 3, Certificates: 2, Fiscal: 1, Contacts: 7, IMSSSemanas: 4, EmailRecovery: 5}
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	d := NewDashboard(totals, at)

	assert.Equal(t, totals, d.TotalRequests)
	assert.Equal(t, int64(15), d.TotalHelped)
	assert.Equal(t, int64(9), d.ElderlySpecific)
	assert.Equal(t, "2025-03-01T12:00:00Z", d.LastUpdated)
}

func TestNewDashboard_Empty(t *testing.T) {
	d := NewDashboard(Totals{}, time.Now())
	assert.Zero(t, d.TotalHelped)
	assert.Zero(t, d.ElderlySpecific)
}
