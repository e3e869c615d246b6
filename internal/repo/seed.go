package repo

import "github.com/rpaiva/warehouse-tracker/internal/models"

type seedProduct struct {
	id, name    string
	quantity    int
	description string
	category    string
}

type seedMovement struct {
	id, productID, productName, mvType string
	quantity                           int
	notes                              string
}

var defaultProducts = []seedProduct{
	{"1", "MDF 15mm Branco", 20, "Chapa de MDF 15mm acabamento branco", "Chapas"},
	{"2", "MDF 18mm Cru", 15, "Chapa de MDF 18mm acabamento cru", "Chapas"},
	{"3", "Dobradiça com amortecimento", 50, "Dobradiça para porta de armário com amortecimento", "Ferragens"},
	{"4", "Corrediça telescópica", 30, "Corrediça telescópica para gaveta", "Ferragens"},
	{"5", "Puxador metálico", 40, "Puxador metálico para gaveta", "Ferragens"},
	{"6", "Suporte mão francesa", 25, "Suporte tipo mão francesa para prateleira", "Ferragens"},
	{"7", "Fecho magnético", 60, "Fecho magnético para porta", "Ferragens"},
	{"8", "Parafuso 4x40mm", 200, "Parafuso Philips 4x40mm", "Fixadores e Acessórios"},
	{"9", "Cavilha de madeira", 150, "Cavilha de madeira 8mm", "Fixadores e Acessórios"},
	{"10", "Cola branca", 10, "Cola branca PVA para madeira", "Fixadores e Acessórios"},
	{"11", "Cola instantânea (super-bonder)", 8, "Cola instantânea para pequenos reparos", "Fixadores e Acessórios"},
	{"12", "Fita de borda", 100, "Fita de borda PVC branca", "Revestimentos e Acabamentos"},
	{"13", "Fita de LED", 12, "Fita de LED 5m 12V", "Componentes Elétricos"},
	{"14", "Fonte para LED", 6, "Fonte 12V para fita de LED", "Componentes Elétricos"},
	{"15", "Lixa 120", 30, "Lixa grão 120 para madeira", "Insumos Gerais"},
	{"16", "Estopa", 5, "Estopa para limpeza", "Insumos Gerais"},
	{"17", "Óleo para lubrificação", 2, "Óleo multiuso para lubrificação", "Insumos Gerais"},
}

var defaultMovements = []seedMovement{
	{"1", "1", "MDF 15mm Branco", models.MovementAdd, 10, "Entrada inicial de MDF 15mm Branco"},
	{"2", "3", "Dobradiça com amortecimento", models.MovementAdd, 20, "Compra de ferragens"},
	{"3", "8", "Parafuso 4x40mm", models.MovementAdd, 100, "Reposição de parafusos"},
	{"4", "12", "Fita de borda", models.MovementAdd, 50, "Compra de fitas de borda"},
	{"5", "15", "Lixa 120", models.MovementAdd, 10, "Entrada de insumos gerais"},
	{"6", "1", "MDF 15mm Branco", models.MovementRemove, 2, "Uso em projeto de armário"},
	{"7", "3", "Dobradiça com amortecimento", models.MovementRemove, 5, "Montagem de porta de armário"},
}

// SeedProducts returns the default catalog used to seed an absent blob.
// Timestamps are assigned at call time.
func SeedProducts() []models.Product {
	now := nowRFC3339()
	products := make([]models.Product, len(defaultProducts))
	for i, s := range defaultProducts {
		products[i] = models.Product{
			ID:          s.id,
			Name:        s.name,
			Quantity:    s.quantity,
			Description: s.description,
			Category:    s.category,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	return products
}

// SeedMovements returns the default ledger used to seed an absent blob.
func SeedMovements() []models.Movement {
	now := nowRFC3339()
	movements := make([]models.Movement, len(defaultMovements))
	for i, s := range defaultMovements {
		movements[i] = models.Movement{
			ID:          s.id,
			ProductID:   s.productID,
			ProductName: s.productName,
			Type:        s.mvType,
			Quantity:    s.quantity,
			Date:        now,
			Notes:       s.notes,
		}
	}
	return movements
}
