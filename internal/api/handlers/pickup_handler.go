package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/scrapwale/scrapwale-be/internal/models"
	"github.com/scrapwale/scrapwale-be/internal/services"
	"github.com/scrapwale/scrapwale-be/internal/storage"
	"github.com/scrapwale/scrapwale-be/internal/validate"
)

// maxImageSize caps a single uploaded image.
const maxImageSize = 5 << 20

// maxFormSize caps the whole multipart submission.
const maxFormSize = 8 << 20

// PickupHandler handles HTTP requests for pickup requests.
type PickupHandler struct {
	service services.PickupServiceProvider
}

// NewPickupHandler creates a new PickupHandler.
func NewPickupHandler(service services.PickupServiceProvider) *PickupHandler {
	return &PickupHandler{service: service}
}

// PickupForm is the decoded multipart submission.
type PickupForm struct {
	Name      string
	Phone     string
	Address   string
	Materials []string
	Date      string
	Notes     string
}

// Validate checks the form shape and constraints before the store is touched.
func (f PickupForm) Validate() validate.Errors {
	var errs validate.Errors
	errs.MinLen("name", f.Name, 2)
	errs.MinLen("phone", f.Phone, 10)
	errs.MinLen("address", f.Address, 10)
	errs.Required("date", f.Date)
	if len(f.Materials) == 0 {
		errs.Add("materials", "Please select at least one material type")
	}
	for _, m := range f.Materials {
		if !models.ValidMaterial(m) {
			errs.Add("materials", "Unknown material type: "+m)
		}
	}
	return errs
}

// Create handles the public pickup submission, including the optional image.
func (h *PickupHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	// materials arrives as a JSON-encoded array string.
	var materials []string
	if err := json.Unmarshal([]byte(r.FormValue("materials")), &materials); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid materials format")
		return
	}

	form := PickupForm{
		Name:      r.FormValue("name"),
		Phone:     r.FormValue("phone"),
		Address:   r.FormValue("address"),
		Materials: materials,
		Date:      r.FormValue("date"),
		Notes:     r.FormValue("notes"),
	}

	if errs := form.Validate(); !errs.Ok() {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"message": errs})
		return
	}

	var imagePath string
	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		if header.Size > maxImageSize {
			respondMessage(w, http.StatusBadRequest, "Image exceeds the 5 MiB limit")
			return
		}
		imagePath, err = h.service.SaveImage(file, header.Filename)
		if err != nil {
			if errors.Is(err, services.ErrUnsupportedImage) {
				respondMessage(w, http.StatusBadRequest, "Unsupported image type")
				return
			}
			log.Error().Err(err).Msg("Failed to store uploaded image")
			respondMessage(w, http.StatusInternalServerError, "Failed to create pickup request")
			return
		}
	case errors.Is(err, http.ErrMissingFile):
		// Image is optional.
	default:
		respondMessage(w, http.StatusBadRequest, "Invalid image upload")
		return
	}

	pickup := h.service.CreatePickup(models.Pickup{
		Name:      form.Name,
		Phone:     form.Phone,
		Address:   form.Address,
		Materials: form.Materials,
		Date:      form.Date,
		Notes:     form.Notes,
		ImagePath: imagePath,
	})

	respondJSON(w, http.StatusCreated, pickup)
}

// GetAll handles the admin request for the full pickup list.
func (h *PickupHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.GetAllPickups())
}

// UpdateStatus handles the admin request to move a pickup through its
// lifecycle. Invalid values leave the stored record untouched.
func (h *PickupHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid pickup ID")
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !models.ValidStatus(payload.Status) {
		respondMessage(w, http.StatusBadRequest, "Invalid status")
		return
	}

	updated, err := h.service.UpdateStatus(id, payload.Status)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "Pickup not found")
			return
		}
		log.Error().Err(err).Int("pickup_id", id).Msg("Failed to update pickup status")
		respondMessage(w, http.StatusInternalServerError, "Failed to update pickup status")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
