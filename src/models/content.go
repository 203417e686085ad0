package models

// Banner is a homepage banner. Banners carry a single image and an
// optional click-through link.
type Banner struct {
	ID     string    `json:"_id,omitempty"`
	NameUz string    `json:"name_uz"`
	NameRu string    `json:"name_ru"`
	Link   string    `json:"link,omitempty"`
	Image  *ImageRef `json:"image,omitempty"`
}

// Service is a service offering shown on the public site. Both
// language variants are maintained side by side.
type Service struct {
	ID            string    `json:"_id,omitempty"`
	NameUz        string    `json:"name_uz"`
	NameRu        string    `json:"name_ru"`
	DescriptionUz string    `json:"description_uz"`
	DescriptionRu string    `json:"description_ru"`
	Image         ImageList `json:"image"`
}

// Portfolio is a completed-work entry. It shares the bilingual
// name/description shape with Service.
type Portfolio struct {
	ID            string    `json:"_id,omitempty"`
	NameUz        string    `json:"name_uz"`
	NameRu        string    `json:"name_ru"`
	DescriptionUz string    `json:"description_uz"`
	DescriptionRu string    `json:"description_ru"`
	Image         ImageList `json:"image"`
}
