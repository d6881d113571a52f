package extract

import (
	"context"
	"testing"

	"notes-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFExtractorDisabledPolicy(t *testing.T) {
	e := NewPDFExtractor(false, 50)

	_, err := e.Extract(context.Background(), Document{
		Name: "notes.pdf",
		Data: []byte("%PDF-1.4 pretend"),
	})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrPDFDisabled, domainErr.Code)
	assert.Contains(t, domainErr.Message, "plain-text file or an image")
}

func TestPDFExtractorMalformedInput(t *testing.T) {
	e := NewPDFExtractor(true, 50)

	_, err := e.Extract(context.Background(), Document{
		Name: "broken.pdf",
		Data: []byte("this is not a pdf at all"),
	})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrExtraction, domainErr.Code)
}

func TestPDFExtractorDefaultPageCap(t *testing.T) {
	e := NewPDFExtractor(true, 0)
	assert.Equal(t, DefaultPDFMaxPages, e.maxPages)
}

func TestPDFExtractorPageBudget(t *testing.T) {
	e := NewPDFExtractor(true, 50)

	// A 120-page document is bounded to the first 50 pages.
	assert.Equal(t, 50, e.pageBudget(120))
	assert.Equal(t, 50, e.pageBudget(50))
	assert.Equal(t, 3, e.pageBudget(3))
}
