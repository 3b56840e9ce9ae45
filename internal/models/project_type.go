package models

// ProjectType is a dashboard-managed type label. Unlike status keys, type
// keys are stored verbatim; only the label is normalized.
type ProjectType struct {
	ID    int    `json:"id"`
	Key   string `json:"key"`
	Label string `json:"label"`
}

func (t *ProjectType) Validate() error {
	if t.Key == "" {
		return ErrStatusKeyRequired
	}
	if t.Label == "" {
		return ErrStatusLabelRequired
	}
	return nil
}
