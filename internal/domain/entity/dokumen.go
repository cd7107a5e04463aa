package entity

// DuplicatePrefix prefijo literal con el que se nombra la copia de un dokumen.
const DuplicatePrefix = "dokumen_name_duplikat_"

// Dokumen documento de catálogo. Entidad independiente referenciada por
// ItemCategory y ProductDetail.
type Dokumen struct {
	ID          string
	Name        *string
	Description *string
	Audit
}
