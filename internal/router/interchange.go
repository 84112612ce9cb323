package router

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/GustavoCaso/zerobudget/internal/interchange"
)

func (r *router) exportHandler(w http.ResponseWriter, req *http.Request) {
	table := tableFrom(req.Context())

	format := interchange.FormatCSV
	if value := req.URL.Query().Get("format"); value != "" {
		var err error
		if format, err = interchange.ParseFormat(value); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	records, err := r.ledger.ListAll(req.Context(), table)
	if err != nil {
		r.fail(w, req, err)
		return
	}

	// render first so a failure can still produce a JSON error
	var buf bytes.Buffer
	if err = interchange.Write(&buf, format, table, records); err != nil {
		r.fail(w, req, err)
		return
	}

	filename := fmt.Sprintf("%s.%s", table, format)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// importHandler accepts either a multipart form with a "file" field or the
// raw file as the request body.
func (r *router) importHandler(w http.ResponseWriter, req *http.Request) {
	table := tableFrom(req.Context())
	query := req.URL.Query()

	keepIDs := false
	if value := query.Get("keep_ids"); value != "" {
		var err error
		if keepIDs, err = strconv.ParseBool(value); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid keep_ids %q", value))
			return
		}
	}

	req.Body = http.MaxBytesReader(w, req.Body, maxUploadSize)

	source, name, err := uploadedFile(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer source.Close()

	format := interchange.FormatCSV
	switch {
	case query.Get("format") != "":
		format, err = interchange.ParseFormat(query.Get("format"))
	case filepath.Ext(name) != "":
		format, err = interchange.ParseFormat(filepath.Ext(name))
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	data, err := interchange.Read(source, format)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unable to read %s upload: %w", format, err))
		return
	}

	imported, err := r.ledger.ImportData(req.Context(), table, data, interchange.Options{PreserveIDs: keepIDs})
	if err != nil {
		r.fail(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, importResponse{Imported: imported})
}

func uploadedFile(req *http.Request) (io.ReadCloser, string, error) {
	mediaType, _, _ := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return req.Body, "", nil
	}

	if err := req.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, "", fmt.Errorf("invalid multipart form: %w", err)
	}

	file, header, err := req.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", errors.New("no file submitted")
		}
		return nil, "", fmt.Errorf("error retrieving the file: %w", err)
	}

	return file, header.Filename, nil
}
