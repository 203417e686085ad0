package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/artjalyuzi/admin-panel/src/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var fieldLabels = map[string]string{
	"NameUz":        "Name (UZ)",
	"NameRu":        "Name (RU)",
	"DescriptionUz": "Description (UZ)",
	"DescriptionRu": "Description (RU)",
	"Login":         "Username",
	"Password":      "Password",
}

// formErrorMessage turns a validator failure into the inline message
// rendered above the form. Required-field checks hold the request at
// the view boundary; nothing reaches the network.
func formErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0].Field()
		label, ok := fieldLabels[field]
		if !ok {
			label = field
		}
		return fmt.Sprintf("%s is required", label)
	}
	return "Invalid form input"
}

// bannerForm is the banner create/edit form payload.
type bannerForm struct {
	NameUz   string `form:"name_uz" validate:"required"`
	NameRu   string `form:"name_ru" validate:"required"`
	Link     string `form:"link"`
	ImageURL string `form:"image_url"`
}

func (f bannerForm) toBanner() models.Banner {
	b := models.Banner{
		NameUz: strings.TrimSpace(f.NameUz),
		NameRu: strings.TrimSpace(f.NameRu),
		Link:   strings.TrimSpace(f.Link),
	}
	if url := strings.TrimSpace(f.ImageURL); url != "" {
		b.Image = &models.ImageRef{URL: url}
	}
	return b
}

// galleryForm is the shared create/edit form payload for services and
// portfolios: bilingual name and description plus an image list,
// entered one URL per line.
type galleryForm struct {
	NameUz        string `form:"name_uz" validate:"required"`
	NameRu        string `form:"name_ru" validate:"required"`
	DescriptionUz string `form:"description_uz" validate:"required"`
	DescriptionRu string `form:"description_ru" validate:"required"`
	ImageURLs     string `form:"image_urls"`
}

func (f galleryForm) images() models.ImageList {
	var list models.ImageList
	for _, line := range strings.Split(f.ImageURLs, "\n") {
		if url := strings.TrimSpace(line); url != "" {
			list = append(list, models.ImageRef{URL: url})
		}
	}
	return list
}

// imageURLLines renders an image list back into the textarea format.
func imageURLLines(list models.ImageList) string {
	urls := make([]string, 0, len(list))
	for _, ref := range list {
		urls = append(urls, ref.URL)
	}
	return strings.Join(urls, "\n")
}
