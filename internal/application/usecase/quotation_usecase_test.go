package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
)

func newQuotationFixture() (*usecase.QuotationUseCase, *memQuotations, *memStore) {
	quotations := newMemQuotations()
	store := newMemStore()
	return usecase.NewQuotationUseCase(quotations, store, 0), quotations, store
}

func uploadPDF(t *testing.T, uc *usecase.QuotationUseCase, content string) int64 {
	t.Helper()
	id, err := uc.Upload(10, 1,
		dto.UploadQuotationRequest{Title: "Cotización Q1", Amount: "150000.50", QuotationDate: "2026-07-01"},
		"cotizacion.pdf", "application/pdf", int64(len(content)), strings.NewReader(content))
	require.NoError(t, err)
	return id
}

func TestQuotationUpload_GuardaArchivoYMetadatos(t *testing.T) {
	uc, quotations, store := newQuotationFixture()

	id := uploadPDF(t, uc, "%PDF-1.4 contenido")

	stored := quotations.byID[id]
	require.NotNil(t, stored)
	assert.Equal(t, "cotizacion.pdf", stored.FileName, "se conserva el nombre original")
	assert.NotEqual(t, "cotizacion.pdf", stored.StoredName, "en disco se usa un nombre único")
	assert.True(t, strings.HasSuffix(stored.StoredName, ".pdf"), "el nombre único conserva la extensión")
	assert.True(t, store.Exists(stored.FilePath))
	assert.Equal(t, int64(len("%PDF-1.4 contenido")), stored.FileSize)
	require.True(t, stored.Amount.Valid)
	assert.Equal(t, "150000.5", stored.Amount.Decimal.String())
}

func TestQuotationUpload_TipoNoPermitido(t *testing.T) {
	uc, _, _ := newQuotationFixture()

	_, err := uc.Upload(10, 1, dto.UploadQuotationRequest{Title: "x"},
		"script.sh", "application/x-sh", 10, strings.NewReader("#!/bin/sh"))
	assert.ErrorIs(t, err, domain.ErrFileTypeNotAllowed)
}

func TestQuotationUpload_ExcedeTamano(t *testing.T) {
	uc, _, _ := newQuotationFixture()

	_, err := uc.Upload(10, 1, dto.UploadQuotationRequest{Title: "x"},
		"grande.pdf", "application/pdf", usecase.MaxQuotationFileSize+1, strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestQuotationUpload_MontoInvalido(t *testing.T) {
	uc, _, _ := newQuotationFixture()

	_, err := uc.Upload(10, 1, dto.UploadQuotationRequest{Title: "x", Amount: "no-numerico"},
		"a.pdf", "application/pdf", 1, strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuotationDownload(t *testing.T) {
	uc, _, store := newQuotationFixture()

	id := uploadPDF(t, uc, "contenido")
	path, fileName, err := uc.Download(id)
	require.NoError(t, err)
	assert.Equal(t, "cotizacion.pdf", fileName, "se descarga con el nombre original")
	assert.True(t, store.Exists(path))

	// Si el archivo desaparece del disco, la descarga reporta not found.
	delete(store.files, path)
	_, _, err = uc.Download(id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuotationDelete_EsLogicoYConservaElArchivo(t *testing.T) {
	uc, quotations, store := newQuotationFixture()

	id := uploadPDF(t, uc, "contenido")
	path := quotations.byID[id].FilePath

	require.NoError(t, uc.Delete(id))

	out, err := uc.Get(id)
	require.NoError(t, err)
	assert.Nil(t, out, "una cotización borrada no se consulta")
	assert.True(t, store.Exists(path), "el archivo en disco se conserva")
}

func TestQuotationUpdate_SoloMetadatos(t *testing.T) {
	uc, quotations, _ := newQuotationFixture()

	id := uploadPDF(t, uc, "contenido")
	original := quotations.byID[id].StoredName

	require.NoError(t, uc.Update(id, dto.UpdateQuotationRequest{
		Title:         "Cotización revisada",
		QuotationDate: "2026-07-15",
		Notes:         "descuento aplicado",
	}))

	stored := quotations.byID[id]
	assert.Equal(t, "Cotización revisada", stored.Title)
	assert.Equal(t, original, stored.StoredName, "el archivo no se reemplaza al editar metadatos")
}
