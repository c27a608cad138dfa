package controllers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/inovaantary/inventory-api/api/responses"
	importsvc "github.com/inovaantary/inventory-api/internal/importer"
	pkgerrors "github.com/inovaantary/inventory-api/pkg/errors"
	"github.com/inovaantary/inventory-api/pkg/logger"
)

// ImportItemsPDF ingests a multipart PDF upload and imports every tabular row
// it can parse. Field name: file.
func ImportItemsPDF(svc importsvc.Service, logg *logger.Logger, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "import service unavailable"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeBadInput, err, "invalid multipart upload"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeBadInput, err, "missing file field"))
			return
		}
		defer file.Close()

		// The PDF parser needs random access, so buffer the upload.
		data, err := io.ReadAll(file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeBadInput, err, "unable to read uploaded file"))
			return
		}

		if logg != nil {
			ctx := logg.WithFields(r.Context(), map[string]any{
				"filename": header.Filename,
				"size":     len(data),
			})
			logg.Info(ctx, "document upload received")
		}

		report, err := svc.ImportPDF(r.Context(), bytes.NewReader(data), int64(len(data)))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, importResponse{
			Message:       report.Message(),
			ItemsParsed:   report.ItemsParsed,
			ItemsInserted: report.ItemsInserted,
			Errors:        importErrors(report.Errors),
		})
	}
}

type importResponse struct {
	Message       string   `json:"message"`
	ItemsParsed   int      `json:"itemsParsed"`
	ItemsInserted int      `json:"itemsInserted"`
	Errors        []string `json:"errors"`
}

func importErrors(errs []string) []string {
	if errs == nil {
		return []string{}
	}
	return errs
}
