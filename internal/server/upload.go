package server

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	maxResumeSize = 10 << 20 // 10 MB
	maxPhotoSize  = 5 << 20  // 5 MB

	// multipartMemory bounds how much of the form is held in memory
	// during parsing; larger parts spill to disk.
	multipartMemory = 16 << 20
)

// allowedPhotoTypes are the accepted profile photo MIME types.
var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// processRequest is the parsed form of a resume processing upload.
type processRequest struct {
	JobID  string
	Title  string
	Resume []byte
	// Photo is a data URI, empty when no photo was uploaded.
	Photo string
	Save  bool
}

// parseProcessRequest validates the multipart upload for POST /process.
// File type checks sniff content with mimetype rather than trusting the
// client's Content-Type header or filename.
func parseProcessRequest(r *http.Request) (*processRequest, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "expected multipart form data"}
	}

	req := &processRequest{
		JobID: r.FormValue("job_id"),
		Title: r.FormValue("title"),
		Save:  r.FormValue("save") == "true",
	}
	if req.JobID == "" {
		req.JobID = uuid.New().String()
	}
	if req.Title == "" {
		req.Title = "My Portfolio"
	}

	resume, err := readFormFile(r, "resume", maxResumeSize, "File size must be less than 10MB.")
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, &ErrValidation{Field: "resume", Message: "resume file is required"}
	}
	if !mimetype.Detect(resume).Is("application/pdf") {
		return nil, &ErrValidation{Field: "resume", Message: "Only PDF files are accepted."}
	}
	req.Resume = resume

	photo, err := readFormFile(r, "photo", maxPhotoSize, "Image size must be less than 5MB.")
	if err != nil {
		return nil, err
	}
	if photo != nil {
		mtype := mimetype.Detect(photo)
		if !allowedPhotoTypes[mtype.String()] {
			return nil, &ErrValidation{Field: "photo", Message: "Only JPEG, PNG and WebP images are accepted."}
		}
		req.Photo = fmt.Sprintf("data:%s;base64,%s", mtype.String(), base64.StdEncoding.EncodeToString(photo))
	}

	return req, nil
}

// readFormFile reads one optional form file, enforcing the size limit.
// Returns (nil, nil) when the field is absent.
func readFormFile(r *http.Request, field string, limit int64, sizeMessage string) ([]byte, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, &ErrValidation{Field: field, Message: "could not read uploaded file"}
	}
	defer file.Close()

	if header.Size > limit {
		return nil, &ErrValidation{Field: field, Message: sizeMessage}
	}

	// header.Size comes from the client; cap the actual read too.
	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, &ErrValidation{Field: field, Message: "could not read uploaded file"}
	}
	if int64(len(data)) > limit {
		return nil, &ErrValidation{Field: field, Message: sizeMessage}
	}
	return data, nil
}
