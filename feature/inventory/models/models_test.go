package models_test

import (
	"testing"
	"time"

	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory/models"

	"github.com/stretchr/testify/assert"
)

func TestProduct_Record(t *testing.T) {
	date := time.Date(2021, time.April, 8, 0, 0, 0, 0, time.UTC)
	p := models.Product{Name: "Widget", DateUpdated: date}

	var r reconcile.Record = p
	assert.Equal(t, "Widget", r.Key())
	assert.Equal(t, date, r.Version())

	r = &p
	assert.Equal(t, "Widget", r.Key())
	assert.Equal(t, "inventory", models.Product{}.TableName())
}
