package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage_DerivesLastPage(t *testing.T) {
	p := NewPage([]StockUnit{{ID: 1}}, Pagination{Total: 21, PerPage: 10, CurrentPage: 3})
	assert.Equal(t, 3, p.LastPage)
	assert.Equal(t, 10, p.PageSize)
	assert.False(t, p.Empty())
}

func TestNewPage_KeepsServerLastPage(t *testing.T) {
	p := NewPage[CatalogEntry](nil, Pagination{Total: 0, PerPage: 10, CurrentPage: 1, LastPage: 1})
	assert.Equal(t, 1, p.LastPage)
	assert.NotNil(t, p.Items)
	assert.True(t, p.Empty())
}

func TestPatchFromEntry(t *testing.T) {
	p := PatchFromEntry(CatalogEntry{ID: 4, Name: "Router", Description: "AX3000"}, nil)
	if assert.NotNil(t, p.Name) && assert.NotNil(t, p.Description) {
		assert.Equal(t, "Router", *p.Name)
		assert.Equal(t, "AX3000", *p.Description)
	}
	assert.Nil(t, p.Image)
}
