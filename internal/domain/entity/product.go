package entity

// Product producto (vehículo/equipo) dueño de una colección de ProductDetail.
type Product struct {
	ID          string
	NameEN      *string
	NameCN      *string
	Description *string
	VinNumber   *string
	ModelType   *string
	Dimensi     *string
	ModelEngine *string
	Audit
}

// ProductDetail detalle de producto con referencia débil a Dokumen.
type ProductDetail struct {
	ID          string
	ProductID   string
	DokumenID   *string
	NameEN      *string
	NameCN      *string
	Description *string
	Audit
}
