package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Conservan el orden de
// inserción y replican los contratos que los casos de uso asumen: vivo vs
// borrado, nil cuando no hay fila y copias de detalle sin reutilizar ids.
// No simulan rollback; los tests solo ejercen rutas sin efectos previos al
// error.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	dokumen  []*entity.Dokumen
	units    []*entity.Unit
	ics      []*entity.ItemCategory
	icds     []*entity.ItemCategoryDetail
	products []*entity.Product
	pds      []*entity.ProductDetail
}

func newFakeStore() *fakeStore { return &fakeStore{} }

func stampNew(a *entity.Audit, actorID string) {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	a.CreatedBy = &actorID
	a.UpdatedBy = &actorID
}

func stampUpdate(a *entity.Audit, actorID string) {
	a.UpdatedAt = time.Now()
	a.UpdatedBy = &actorID
}

func stampDelete(a *entity.Audit, actorID string) {
	now := time.Now()
	a.IsDelete = true
	a.DeletedAt = &now
	a.DeletedBy = &actorID
	stampUpdate(a, actorID)
}

func stampRestore(a *entity.Audit, actorID string) {
	a.IsDelete = false
	a.DeletedAt = nil
	a.DeletedBy = nil
	stampUpdate(a, actorID)
}

func pageOf[T any](rows []T, q repository.ListQuery) []T {
	start := q.Offset()
	if start > len(rows) {
		start = len(rows)
	}
	end := start + q.Limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

var (
	_ repository.DokumenRepository            = (*fakeDokumenRepo)(nil)
	_ repository.UnitRepository               = (*fakeUnitRepo)(nil)
	_ repository.ItemCategoryRepository       = (*fakeItemCategoryRepo)(nil)
	_ repository.ItemCategoryDetailRepository = (*fakeItemCategoryDetailRepo)(nil)
	_ repository.ProductRepository            = (*fakeProductRepo)(nil)
	_ repository.ProductDetailRepository      = (*fakeProductDetailRepo)(nil)
	_ repository.TxRunner                     = (*fakeTxRunner)(nil)
)

// ──────────────────────────────────────────────────────────────────────────────
// Dokumen
// ──────────────────────────────────────────────────────────────────────────────

type fakeDokumenRepo struct{ s *fakeStore }

func (r *fakeDokumenRepo) findLive(id string) *entity.Dokumen {
	for _, d := range r.s.dokumen {
		if d.ID == id && !d.IsDelete {
			return d
		}
	}
	return nil
}

func (r *fakeDokumenRepo) FindAll(q repository.ListQuery) ([]repository.DokumenListRow, int, error) {
	rows := []repository.DokumenListRow{}
	for _, d := range r.s.dokumen {
		if d.IsDelete {
			continue
		}
		rows = append(rows, repository.DokumenListRow{Dokumen: *d})
	}
	return pageOf(rows, q), len(rows), nil
}

func (r *fakeDokumenRepo) FindByID(id string) (*entity.Dokumen, error) {
	return r.findLive(id), nil
}

func (r *fakeDokumenRepo) FindLiveByName(name string) (*entity.Dokumen, error) {
	for _, d := range r.s.dokumen {
		if !d.IsDelete && d.Name != nil && *d.Name == name {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDokumenRepo) Create(d *entity.Dokumen, actorID string) (*entity.Dokumen, error) {
	cp := *d
	cp.ID = uuid.NewString()
	stampNew(&cp.Audit, actorID)
	r.s.dokumen = append(r.s.dokumen, &cp)
	return &cp, nil
}

func (r *fakeDokumenRepo) Update(d *entity.Dokumen, actorID string) (*entity.Dokumen, error) {
	cur := r.findLive(d.ID)
	if cur == nil {
		return nil, nil
	}
	cur.Name = d.Name
	cur.Description = d.Description
	stampUpdate(&cur.Audit, actorID)
	return cur, nil
}

func (r *fakeDokumenRepo) UpdateName(id, name, actorID string) error {
	for _, d := range r.s.dokumen {
		if d.ID == id {
			n := name
			d.Name = &n
			stampUpdate(&d.Audit, actorID)
		}
	}
	return nil
}

func (r *fakeDokumenRepo) SoftDelete(id, actorID string) (*entity.Dokumen, error) {
	cur := r.findLive(id)
	if cur == nil {
		return nil, nil
	}
	stampDelete(&cur.Audit, actorID)
	return cur, nil
}

func (r *fakeDokumenRepo) Restore(id, actorID string) (*entity.Dokumen, error) {
	for _, d := range r.s.dokumen {
		if d.ID == id && d.IsDelete {
			stampRestore(&d.Audit, actorID)
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDokumenRepo) HardDelete(id string) error {
	out := r.s.dokumen[:0]
	for _, d := range r.s.dokumen {
		if d.ID != id {
			out = append(out, d)
		}
	}
	r.s.dokumen = out
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Unit
// ──────────────────────────────────────────────────────────────────────────────

type fakeUnitRepo struct{ s *fakeStore }

func (r *fakeUnitRepo) FindAll(q repository.ListQuery) ([]entity.Unit, int, error) {
	rows := []entity.Unit{}
	for _, u := range r.s.units {
		if !u.IsDelete {
			rows = append(rows, *u)
		}
	}
	return pageOf(rows, q), len(rows), nil
}

func (r *fakeUnitRepo) FindByID(id string) (*entity.Unit, error) {
	for _, u := range r.s.units {
		if u.ID == id && !u.IsDelete {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUnitRepo) FindLiveByName(name string) (*entity.Unit, error) {
	for _, u := range r.s.units {
		if !u.IsDelete && u.NameEN != nil && *u.NameEN == name {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUnitRepo) Create(u *entity.Unit, actorID string) (*entity.Unit, error) {
	cp := *u
	cp.ID = uuid.NewString()
	stampNew(&cp.Audit, actorID)
	r.s.units = append(r.s.units, &cp)
	return &cp, nil
}

func (r *fakeUnitRepo) Update(u *entity.Unit, actorID string) (*entity.Unit, error) {
	cur, _ := r.FindByID(u.ID)
	if cur == nil {
		return nil, nil
	}
	cur.NameEN = u.NameEN
	cur.NameCN = u.NameCN
	cur.Description = u.Description
	stampUpdate(&cur.Audit, actorID)
	return cur, nil
}

func (r *fakeUnitRepo) SoftDelete(id, actorID string) (*entity.Unit, error) {
	cur, _ := r.FindByID(id)
	if cur == nil {
		return nil, nil
	}
	stampDelete(&cur.Audit, actorID)
	return cur, nil
}

func (r *fakeUnitRepo) HardDelete(id string) error {
	out := r.s.units[:0]
	for _, u := range r.s.units {
		if u.ID != id {
			out = append(out, u)
		}
	}
	r.s.units = out
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// ItemCategory
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemCategoryRepo struct{ s *fakeStore }

func (r *fakeItemCategoryRepo) findLive(id string) *entity.ItemCategory {
	for _, ic := range r.s.ics {
		if ic.ID == id && !ic.IsDelete {
			return ic
		}
	}
	return nil
}

// FindAll replica la proyección del listado: un par distinto por dokumen.
func (r *fakeItemCategoryRepo) FindAll(q repository.ListQuery, f repository.ItemCategoryFilters) ([]repository.ItemCategoryListRow, int, error) {
	seen := map[string]bool{}
	rows := []repository.ItemCategoryListRow{}
	dok := fakeDokumenRepo{r.s}
	for _, ic := range r.s.ics {
		if ic.IsDelete || ic.DokumenID == nil || seen[*ic.DokumenID] {
			continue
		}
		seen[*ic.DokumenID] = true
		row := repository.ItemCategoryListRow{DokumenID: ic.DokumenID}
		if d := dok.findLive(*ic.DokumenID); d != nil {
			row.DokumenName = d.Name
			created := d.CreatedAt
			row.CreatedAt = &created
		}
		rows = append(rows, row)
	}
	return pageOf(rows, q), len(rows), nil
}

func (r *fakeItemCategoryRepo) FindByID(id string) (*repository.ItemCategoryWithRelations, error) {
	ic := r.findLive(id)
	if ic == nil {
		return nil, nil
	}
	out := &repository.ItemCategoryWithRelations{ItemCategory: *ic}
	dok := fakeDokumenRepo{r.s}
	if ic.DokumenID != nil {
		if d := dok.findLive(*ic.DokumenID); d != nil {
			out.DokumenName = d.Name
			out.DokumenDescription = d.Description
		}
	}
	units := fakeUnitRepo{r.s}
	for _, d := range r.s.icds {
		if d.IsDelete || d.ItemCategoryID == nil || *d.ItemCategoryID != id {
			continue
		}
		row := repository.ItemCategoryDetailRow{ItemCategoryDetail: *d}
		if d.Unit != nil {
			if u, _ := units.FindLiveByName(*d.Unit); u != nil {
				row.UnitNameEN = u.NameEN
				row.UnitNameCN = u.NameCN
			}
		}
		out.Details = append(out.Details, row)
	}
	return out, nil
}

func (r *fakeItemCategoryRepo) FindByDokumenID(dokumenID string, q repository.ListQuery) ([]repository.DokumenItemRow, int, error) {
	rows := []repository.DokumenItemRow{}
	for _, ic := range r.s.ics {
		if ic.IsDelete || ic.DokumenID == nil || *ic.DokumenID != dokumenID {
			continue
		}
		rows = append(rows, repository.DokumenItemRow{
			ItemCategoryID: ic.ID,
			DokumenID:      ic.DokumenID,
		})
	}
	return pageOf(rows, q), len(rows), nil
}

func (r *fakeItemCategoryRepo) FindLiveByID(id string) (*entity.ItemCategory, error) {
	ic := r.findLive(id)
	if ic == nil {
		return nil, nil
	}
	cp := *ic
	return &cp, nil
}

func (r *fakeItemCategoryRepo) ListLiveByDokumenID(dokumenID string) ([]entity.ItemCategory, error) {
	var out []entity.ItemCategory
	for _, ic := range r.s.ics {
		if !ic.IsDelete && ic.DokumenID != nil && *ic.DokumenID == dokumenID {
			out = append(out, *ic)
		}
	}
	return out, nil
}

func (r *fakeItemCategoryRepo) Insert(ic *entity.ItemCategory, actorID string) (*entity.ItemCategory, error) {
	cp := *ic
	cp.ID = uuid.NewString()
	stampNew(&cp.Audit, actorID)
	r.s.ics = append(r.s.ics, &cp)
	return &cp, nil
}

func (r *fakeItemCategoryRepo) UpdateFields(ic *entity.ItemCategory, actorID string) (*entity.ItemCategory, error) {
	cur := r.findLive(ic.ID)
	if cur == nil {
		return nil, nil
	}
	cur.TypeCategoryID = ic.TypeCategoryID
	cur.CategoryID = ic.CategoryID
	cur.DokumenID = ic.DokumenID
	cur.NameEN = ic.NameEN
	cur.NameCN = ic.NameCN
	cur.Description = ic.Description
	cur.Foto = ic.Foto
	stampUpdate(&cur.Audit, actorID)
	return cur, nil
}

func (r *fakeItemCategoryRepo) SoftDelete(id, actorID string) (*entity.ItemCategory, error) {
	cur := r.findLive(id)
	if cur == nil {
		return nil, nil
	}
	stampDelete(&cur.Audit, actorID)
	return cur, nil
}

func (r *fakeItemCategoryRepo) Restore(id, actorID string) (*entity.ItemCategory, error) {
	for _, ic := range r.s.ics {
		if ic.ID == id && ic.IsDelete {
			stampRestore(&ic.Audit, actorID)
			return ic, nil
		}
	}
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// ItemCategoryDetail
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemCategoryDetailRepo struct{ s *fakeStore }

func (r *fakeItemCategoryDetailRepo) ListLiveByItemCategoryID(itemCategoryID string) ([]entity.ItemCategoryDetail, error) {
	var out []entity.ItemCategoryDetail
	for _, d := range r.s.icds {
		if !d.IsDelete && d.ItemCategoryID != nil && *d.ItemCategoryID == itemCategoryID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeItemCategoryDetailRepo) Insert(d *entity.ItemCategoryDetail, actorID string) error {
	cp := *d
	cp.ID = uuid.NewString()
	stampNew(&cp.Audit, actorID)
	r.s.icds = append(r.s.icds, &cp)
	return nil
}

func (r *fakeItemCategoryDetailRepo) InsertMany(ds []entity.ItemCategoryDetail, actorID string) error {
	for i := range ds {
		if err := r.Insert(&ds[i], actorID); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeItemCategoryDetailRepo) HardDeleteByItemCategoryID(itemCategoryID string) error {
	out := r.s.icds[:0]
	for _, d := range r.s.icds {
		if d.ItemCategoryID == nil || *d.ItemCategoryID != itemCategoryID {
			out = append(out, d)
		}
	}
	r.s.icds = out
	return nil
}

func (r *fakeItemCategoryDetailRepo) SoftDeleteByItemCategoryID(itemCategoryID, actorID string) error {
	for _, d := range r.s.icds {
		if !d.IsDelete && d.ItemCategoryID != nil && *d.ItemCategoryID == itemCategoryID {
			stampDelete(&d.Audit, actorID)
		}
	}
	return nil
}

func (r *fakeItemCategoryDetailRepo) RestoreByItemCategoryID(itemCategoryID, actorID string) error {
	for _, d := range r.s.icds {
		if d.IsDelete && d.ItemCategoryID != nil && *d.ItemCategoryID == itemCategoryID {
			stampRestore(&d.Audit, actorID)
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Product
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) findLive(id string) *entity.Product {
	for _, p := range r.s.products {
		if p.ID == id && !p.IsDelete {
			return p
		}
	}
	return nil
}

func (r *fakeProductRepo) detailRows(productID string) []repository.ProductDetailRow {
	var out []repository.ProductDetailRow
	dok := fakeDokumenRepo{r.s}
	for _, d := range r.s.pds {
		if d.IsDelete || d.ProductID != productID {
			continue
		}
		row := repository.ProductDetailRow{ProductDetail: *d}
		if d.DokumenID != nil {
			if dd := dok.findLive(*d.DokumenID); dd != nil {
				row.DokumenName = dd.Name
				row.DokumenDescription = dd.Description
			}
		}
		out = append(out, row)
	}
	return out
}

func (r *fakeProductRepo) FindAll(q repository.ListQuery) ([]repository.ProductWithDetails, int, error) {
	rows := []repository.ProductWithDetails{}
	for _, p := range r.s.products {
		if p.IsDelete {
			continue
		}
		rows = append(rows, repository.ProductWithDetails{
			Product: *p,
			Details: r.detailRows(p.ID),
		})
	}
	return pageOf(rows, q), len(rows), nil
}

func (r *fakeProductRepo) FindByID(id string) (*repository.ProductWithDetails, error) {
	p := r.findLive(id)
	if p == nil {
		return nil, nil
	}
	return &repository.ProductWithDetails{Product: *p, Details: r.detailRows(id)}, nil
}

func (r *fakeProductRepo) FindLiveByID(id string) (*entity.Product, error) {
	p := r.findLive(id)
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Insert(p *entity.Product, actorID string) (*entity.Product, error) {
	cp := *p
	cp.ID = uuid.NewString()
	stampNew(&cp.Audit, actorID)
	r.s.products = append(r.s.products, &cp)
	return &cp, nil
}

func (r *fakeProductRepo) UpdateFields(p *entity.Product, actorID string) (*entity.Product, error) {
	cur := r.findLive(p.ID)
	if cur == nil {
		return nil, nil
	}
	cur.NameEN = p.NameEN
	cur.NameCN = p.NameCN
	cur.Description = p.Description
	cur.VinNumber = p.VinNumber
	cur.ModelType = p.ModelType
	cur.Dimensi = p.Dimensi
	cur.ModelEngine = p.ModelEngine
	stampUpdate(&cur.Audit, actorID)
	return cur, nil
}

func (r *fakeProductRepo) SoftDelete(id, actorID string) (*entity.Product, error) {
	cur := r.findLive(id)
	if cur == nil {
		return nil, nil
	}
	stampDelete(&cur.Audit, actorID)
	return cur, nil
}

func (r *fakeProductRepo) Restore(id, actorID string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.ID == id && p.IsDelete {
			stampRestore(&p.Audit, actorID)
			return p, nil
		}
	}
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// ProductDetail
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductDetailRepo struct{ s *fakeStore }

func (r *fakeProductDetailRepo) Insert(d *entity.ProductDetail, actorID string) error {
	cp := *d
	cp.ID = uuid.NewString()
	stampNew(&cp.Audit, actorID)
	r.s.pds = append(r.s.pds, &cp)
	return nil
}

func (r *fakeProductDetailRepo) HardDeleteByProductID(productID string) error {
	out := r.s.pds[:0]
	for _, d := range r.s.pds {
		if d.ProductID != productID {
			out = append(out, d)
		}
	}
	r.s.pds = out
	return nil
}

func (r *fakeProductDetailRepo) SoftDeleteByProductID(productID, actorID string) error {
	for _, d := range r.s.pds {
		if !d.IsDelete && d.ProductID == productID {
			stampDelete(&d.Audit, actorID)
		}
	}
	return nil
}

func (r *fakeProductDetailRepo) RestoreByProductID(productID, actorID string) error {
	for _, d := range r.s.pds {
		if d.IsDelete && d.ProductID == productID {
			stampRestore(&d.Audit, actorID)
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) RunItemCategoryTx(ctx context.Context, fn func(tx repository.ItemCategoryTx) error) error {
	return fn(repository.ItemCategoryTx{
		ItemCategories: &fakeItemCategoryRepo{r.s},
		Details:        &fakeItemCategoryDetailRepo{r.s},
		Dokumen:        &fakeDokumenRepo{r.s},
		Units:          &fakeUnitRepo{r.s},
	})
}

func (r *fakeTxRunner) RunDokumenTx(ctx context.Context, fn func(tx repository.DokumenTx) error) error {
	return fn(repository.DokumenTx{
		Dokumen:        &fakeDokumenRepo{r.s},
		ItemCategories: &fakeItemCategoryRepo{r.s},
		Details:        &fakeItemCategoryDetailRepo{r.s},
	})
}

func (r *fakeTxRunner) RunProductTx(ctx context.Context, fn func(tx repository.ProductTx) error) error {
	return fn(repository.ProductTx{
		Products: &fakeProductRepo{r.s},
		Details:  &fakeProductDetailRepo{r.s},
	})
}
