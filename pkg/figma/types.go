package figma

import (
	"encoding/json"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ProjectDetails represents the response of the Figma project files endpoint
// (GET /v1/projects/:project_id/files). Files keep the order the API returned them in.
type ProjectDetails struct {
	Name  string     `json:"name" yaml:"name"`
	Files []FileInfo `json:"files" yaml:"files"`
}

// Validate requires a project name and a present (possibly empty) files list,
// then validates every file.
func (p ProjectDetails) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Files, validation.NotNil),
	)
}

// FileInfo is the summary record of a file inside a project. It carries no page data.
type FileInfo struct {
	Key          string  `json:"key" yaml:"key"`
	Name         string  `json:"name" yaml:"name"`
	ThumbnailURL *string `json:"thumbnailUrl,omitempty" yaml:"thumbnailUrl,omitempty"`
	LastModified string  `json:"lastModified" yaml:"lastModified"`
}

// Validate requires key, name and lastModified.
func (f FileInfo) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Key, validation.Required),
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.LastModified, validation.Required),
	)
}

// LastModifiedTime parses LastModified as an RFC 3339 timestamp.
func (f FileInfo) LastModifiedTime() (time.Time, error) {
	return time.Parse(time.RFC3339, f.LastModified)
}

// FileDetails is the full record of a single file.
// Pages is empty unless the pages were explicitly fetched. A missing pages
// list decodes to an empty slice and encodes as [], so after a round trip an
// absent list and an empty one look the same.
type FileDetails struct {
	Key   string        `json:"key" yaml:"key"`
	Name  string        `json:"name" yaml:"name"`
	Pages []PageDetails `json:"pages" yaml:"pages"`
}

// Validate requires key and name, then validates every page.
func (f FileDetails) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Key, validation.Required),
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Pages),
	)
}

// UnmarshalJSON decodes a file and defaults a missing pages list to empty.
func (f *FileDetails) UnmarshalJSON(data []byte) error {
	type plain FileDetails
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Pages == nil {
		v.Pages = []PageDetails{}
	}
	*f = FileDetails(v)
	return nil
}

// PageDetails is one canvas of a file. Like FileDetails.Pages, a missing
// layers list decodes to an empty slice and encodes as [].
type PageDetails struct {
	ID     string         `json:"id" yaml:"id"`
	Name   string         `json:"name" yaml:"name"`
	Layers []LayerDetails `json:"layers" yaml:"layers"`
}

// Validate requires id and name, then validates every layer.
func (p PageDetails) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Layers),
	)
}

// UnmarshalJSON decodes a page and defaults a missing layers list to empty.
func (p *PageDetails) UnmarshalJSON(data []byte) error {
	type plain PageDetails
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Layers == nil {
		v.Layers = []LayerDetails{}
	}
	*p = PageDetails(v)
	return nil
}

// LayerDetails is a leaf visual node of a page, optionally exportable as an image.
type LayerDetails struct {
	ID       string  `json:"id" yaml:"id"`
	Name     *string `json:"name,omitempty" yaml:"name,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

// Validate requires an id; name and imageUrl are optional.
func (l LayerDetails) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.ID, validation.Required),
	)
}

// ExportOptions holds client-side export settings. It is part of the modeled
// schema only; nothing in the fetch path reads it.
type ExportOptions struct {
	Directory     *string `json:"directory,omitempty" yaml:"directory,omitempty"`
	Format        *string `json:"format,omitempty" yaml:"format,omitempty"` // e.g. "png", "svg"
	Scale         *uint   `json:"scale,omitempty" yaml:"scale,omitempty"`
	FirstPageOnly *bool   `json:"firstPageOnly,omitempty" yaml:"firstPageOnly,omitempty"`
}

// Validate accepts any value: every field is optional and the JSON decoder
// already rejects values of the wrong type.
func (o ExportOptions) Validate() error {
	return nil
}
