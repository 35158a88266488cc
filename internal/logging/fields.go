package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldClubID     = "club_id"
	FieldPath       = "path"
	FieldRows       = "rows"
	FieldDurationMS = "duration_ms"
)
