package repositories

// TableSource serves the embedded reference table. Blank dates are
// deliberate "deadline not yet set" rows and stay in the table so the
// catalog skip behavior is exercised with real data.
type TableSource struct{}

func NewTableSource() *TableSource {
	return &TableSource{}
}

func (s *TableSource) Rows() ([]RawRow, error) {
	rows := make([]RawRow, 0, len(rawDeadlines))
	for i, row := range rawDeadlines {
		rows = append(rows, RawRow{
			Row:      i + 1,
			Provider: row[0],
			Tenant:   DefaultTenant,
			Brand:    row[1],
			Country:  row[2],
			Date:     row[3],
		})
	}
	return rows, nil
}

// (proveedor, marca, pais, fecha)
//
//nolint:gochecknoglobals //static reference data
var rawDeadlines = [][4]string{
	// Proveedor 1 (CHANEL, CLARINS, ...)
	{"Proveedor1", "CHANEL", "COLOMBIA", "30-ene-25"},
	{"Proveedor1", "CHANEL", "COLOMBIA", "28-feb-25"},
	{"Proveedor1", "CHANEL", "COLOMBIA", "03-abr-25"},
	{"Proveedor1", "CHANEL", "COLOMBIA", "06-may-25"},
	{"Proveedor1", "CHANEL", "COLOMBIA", "05-jun-25"},
	{"Proveedor1", "CHANEL", "COLOMBIA", "04-jul-25"},
	{"Proveedor1", "CHANEL", "COLOMBIA", "06-ago-25"},
	{"Proveedor1", "CHANEL", "COLOMBIA", "04-sep-25"},
	{"Proveedor1", "CHANEL", "COLOMBIA", "03-oct-25"},
	{"Proveedor1", "CHANEL", "COLOMBIA", "31-oct-25"},
	{"Proveedor1", "CHANEL", "COSTA RICA", "30-ene-25"},
	{"Proveedor1", "CHANEL", "COSTA RICA", "28-feb-25"},
	{"Proveedor1", "CHANEL", "COSTA RICA", "05-abr-25"},
	{"Proveedor1", "CHANEL", "COSTA RICA", "08-may-25"},
	{"Proveedor1", "CHANEL", "COSTA RICA", "07-jun-25"},
	{"Proveedor1", "CHANEL", "COSTA RICA", "06-jul-25"},
	{"Proveedor1", "CHANEL", "COSTA RICA", "08-ago-25"},
	{"Proveedor1", "CHANEL", "COSTA RICA", "06-sep-25"},
	{"Proveedor1", "CHANEL", "COSTA RICA", "05-oct-25"},
	{"Proveedor1", "CHANEL", "COSTA RICA", "07-nov-25"},
	// CLARINS
	{"Proveedor1", "CLARINS", "COLOMBIA", ""},
	{"Proveedor1", "CLARINS", "COLOMBIA", ""},
	{"Proveedor1", "CLARINS", "COLOMBIA", "15-mar-25"},
	{"Proveedor1", "CLARINS", "COLOMBIA", "15-abr-25"},
	{"Proveedor1", "CLARINS", "COLOMBIA", "15-may-25"},
	{"Proveedor1", "CLARINS", "COLOMBIA", "15-jun-25"},
	{"Proveedor1", "CLARINS", "COLOMBIA", "15-jul-25"},
	{"Proveedor1", "CLARINS", "COLOMBIA", "15-ago-25"},
	{"Proveedor1", "CLARINS", "COLOMBIA", "15-sep-25"},
	{"Proveedor1", "CLARINS", "COLOMBIA", "15-oct-25"},
	{"Proveedor1", "CLARINS", "COSTA RICA", ""},
	{"Proveedor1", "CLARINS", "COSTA RICA", ""},
	{"Proveedor1", "CLARINS", "COSTA RICA", "15-mar-25"},
	{"Proveedor1", "CLARINS", "COSTA RICA", "15-abr-25"},
	{"Proveedor1", "CLARINS", "COSTA RICA", "15-may-25"},
	{"Proveedor1", "CLARINS", "COSTA RICA", "15-jun-25"},
	{"Proveedor1", "CLARINS", "COSTA RICA", "15-jul-25"},
	{"Proveedor1", "CLARINS", "COSTA RICA", "15-ago-25"},
	{"Proveedor1", "CLARINS", "COSTA RICA", "15-sep-25"},
	{"Proveedor1", "CLARINS", "COSTA RICA", "15-oct-25"},
	// JA / JA SKILL
	{"Proveedor1", "JA", "COLOMBIA", "16-feb-25"},
	{"Proveedor1", "JA", "COLOMBIA", ""},
	{"Proveedor1", "JA", "COLOMBIA", "15-abr-25"},
	{"Proveedor1", "JA", "COLOMBIA", "15-may-25"},
	{"Proveedor1", "JA", "COLOMBIA", "15-jun-25"},
	{"Proveedor1", "JA", "COLOMBIA", "15-jul-25"},
	{"Proveedor1", "JA", "COLOMBIA", "15-ago-25"},
	{"Proveedor1", "JA", "COLOMBIA", "15-sep-25"},
	{"Proveedor1", "JA", "COLOMBIA", "15-oct-25"},
	{"Proveedor1", "JA", "COLOMBIA", "15-nov-25"},
	{"Proveedor1", "JA / SKILL", "COSTA RICA", "05-feb-25"},
	{"Proveedor1", "JA / SKILL", "COSTA RICA", ""},
	{"Proveedor1", "JA / SKILL", "COSTA RICA", "15-abr-25"},
	{"Proveedor1", "JA / SKILL", "COSTA RICA", "15-may-25"},
	{"Proveedor1", "JA / SKILL", "COSTA RICA", "15-jun-25"},
	{"Proveedor1", "JA / SKILL", "COSTA RICA", "15-jul-25"},
	{"Proveedor1", "JA / SKILL", "COSTA RICA", "15-ago-25"},
	{"Proveedor1", "JA / SKILL", "COSTA RICA", "15-sep-25"},
	{"Proveedor1", "JA / SKILL", "COSTA RICA", "15-oct-25"},
	{"Proveedor1", "JA / SKILL", "COSTA RICA", "15-nov-25"},
	// CHANEL DFA/NORA/IMAS
	{"Proveedor1", "CHANEL", "DFA/ NORA / IMAS", "10-feb-25"},
	{"Proveedor1", "CHANEL", "DFA/ NORA / IMAS", "10-mar-25"},
	{"Proveedor1", "CHANEL", "DFA/ NORA / IMAS", "10-abr-25"},
	{"Proveedor1", "CHANEL", "DFA/ NORA / IMAS", "10-may-25"},
	{"Proveedor1", "CHANEL", "DFA/ NORA / IMAS", "10-jun-25"},
	{"Proveedor1", "CHANEL", "DFA/ NORA / IMAS", "10-jul-25"},
	{"Proveedor1", "CHANEL", "DFA/ NORA / IMAS", "10-ago-25"},
	{"Proveedor1", "CHANEL", "DFA/ NORA / IMAS", "10-sep-25"},
	{"Proveedor1", "CHANEL", "DFA/ NORA / IMAS", "10-oct-25"},
	{"Proveedor1", "CHANEL", "DFA/ NORA / IMAS", "31-oct-25"},
	// HÉRMES CR + DFA/NORA/IMAS
	{"Proveedor1", "HÉRMES", "COSTA RICA", ""},
	{"Proveedor1", "HÉRMES", "COSTA RICA", ""},
	{"Proveedor1", "HÉRMES", "COSTA RICA", "31-mar-25"},
	{"Proveedor1", "HÉRMES", "COSTA RICA", "30-abr-25"},
	{"Proveedor1", "HÉRMES", "COSTA RICA", "30-may-25"},
	{"Proveedor1", "HÉRMES", "COSTA RICA", "30-jun-25"},
	{"Proveedor1", "HÉRMES", "COSTA RICA", "31-jul-25"},
	{"Proveedor1", "HÉRMES", "COSTA RICA", "31-ago-25"},
	{"Proveedor1", "HÉRMES", "COSTA RICA", "31-oct-25"},
	{"Proveedor1", "HÉRMES", "COSTA RICA", "30-nov-25"},
	{"Proveedor1", "HÉRMES", "DFA/ NORA / IMAS", ""},
	{"Proveedor1", "HÉRMES", "DFA/ NORA / IMAS", ""},
	{"Proveedor1", "HÉRMES", "DFA/ NORA / IMAS", "31-mar-25"},
	{"Proveedor1", "HÉRMES", "DFA/ NORA / IMAS", "30-abr-25"},
	{"Proveedor1", "HÉRMES", "DFA/ NORA / IMAS", "30-may-25"},
	{"Proveedor1", "HÉRMES", "DFA/ NORA / IMAS", "30-jun-25"},
	{"Proveedor1", "HÉRMES", "DFA/ NORA / IMAS", "31-jul-25"},
	{"Proveedor1", "HÉRMES", "DFA/ NORA / IMAS", "31-ago-25"},
	{"Proveedor1", "HÉRMES", "DFA/ NORA / IMAS", "31-oct-25"},
	{"Proveedor1", "HÉRMES", "DFA/ NORA / IMAS", "30-nov-25"},
	// Otros
	{"Proveedor1", "PUPA", "COSTA RICA", "15-jun-25"},
	{"Proveedor1", "PUPA", "COSTA RICA", "15-sep-25"},
	{"Proveedor1", "CARTIER", "COSTA RICA", "15-may-25"},
	{"Proveedor1", "CARTIER", "COSTA RICA", "15-ago-25"},
	{"Proveedor1", "ICONIC", "COSTA RICA", "15-jun-25"},

	// Proveedor 2 (DIOR + LFB)
	{"Proveedor2", "DIOR", "COSTA RICA", "06-jun-25"},
	{"Proveedor2", "DIOR", "COSTA RICA", "06-jul-25"},
	{"Proveedor2", "DIOR", "COSTA RICA", "06-ago-25"},
	{"Proveedor2", "DIOR", "COSTA RICA", "06-sep-25"},
	{"Proveedor2", "DIOR", "COSTA RICA", "06-oct-25"},
	{"Proveedor2", "DIOR", "COSTA RICA", "06-nov-25"},
	{"Proveedor2", "DIOR", "COSTA RICA", "06-dic-25"},
	{"Proveedor2", "DIOR", "COLOMBIA", "06-jun-25"},
	{"Proveedor2", "DIOR", "COLOMBIA", "06-jul-25"},
	{"Proveedor2", "DIOR", "COLOMBIA", "06-ago-25"},
	{"Proveedor2", "DIOR", "COLOMBIA", "06-sep-25"},
	{"Proveedor2", "DIOR", "COLOMBIA", "06-oct-25"},
	{"Proveedor2", "DIOR", "COLOMBIA", "06-nov-25"},
	{"Proveedor2", "DIOR", "COLOMBIA", "06-dic-25"},
	{"Proveedor2", "DIOR", "CHILE", "06-jun-25"},
	{"Proveedor2", "DIOR", "CHILE", "06-jul-25"},
	{"Proveedor2", "DIOR", "CHILE", "06-ago-25"},
	{"Proveedor2", "DIOR", "CHILE", "06-sep-25"},
	{"Proveedor2", "DIOR", "CHILE", "06-oct-25"},
	{"Proveedor2", "DIOR", "CHILE", "06-nov-25"},
	{"Proveedor2", "DIOR", "CHILE", "06-dic-25"},
	{"Proveedor2", "LFB", "CHILE", "02-jun-25"},
	{"Proveedor2", "LFB", "CHILE", "02-jul-25"},
	{"Proveedor2", "LFB", "CHILE", "02-ago-25"},
	{"Proveedor2", "LFB", "CHILE", "02-sep-25"},
	{"Proveedor2", "LFB", "CHILE", "02-oct-25"},
	{"Proveedor2", "LFB", "CHILE", "02-nov-25"},
	{"Proveedor2", "LFB", "CHILE", "02-dic-25"},
	{"Proveedor2", "LFB", "COSTA RICA", "02-jun-25"},
	{"Proveedor2", "LFB", "COSTA RICA", "02-jul-25"},
	{"Proveedor2", "LFB", "COSTA RICA", "02-ago-25"},
	{"Proveedor2", "LFB", "COSTA RICA", "02-sep-25"},
	{"Proveedor2", "LFB", "COSTA RICA", "02-oct-25"},
	{"Proveedor2", "LFB", "COSTA RICA", "02-nov-25"},
	{"Proveedor2", "LFB", "COSTA RICA", "02-dic-25"},

	// Proveedor 3 (Panamá)
	{"Proveedor3", "ACTIUM", "PANAMA", "06-jul-25"},
	{"Proveedor3", "AGENCIAS FEDURO", "PANAMA", "10-jul-25"},
	{"Proveedor3", "BEAUTE PRESTIGE INTERNATIONAL SAS", "PANAMA", "06-jul-25"},
	{"Proveedor3", "BELUXE LATAM SA", "PANAMA", "06-jul-25"},
	{"Proveedor3", "DOLCE & GABBANA BEAUTY USA INC.", "PANAMA", "06-jul-25"},
	{"Proveedor3", "ESSENCE CORPORATION", "PANAMA", "06-jul-25"},
	{"Proveedor3", "ESTEE LAUDER AG LACHEN", "PANAMA", "06-jul-25"},
	{"Proveedor3", "MLL BRAND IMPORT LLC", "PANAMA", "06-jul-25"},
	{"Proveedor3", "SHISEIDO TRAVEL RETAIL AMERICAS", "PANAMA", "06-jul-25"},
	{"Proveedor3", "ACTIUM", "PANAMA", "06-ago-25"},
	{"Proveedor3", "AGENCIAS FEDURO", "PANAMA", "10-ago-25"},
	{"Proveedor3", "BEAUTE PRESTIGE INTERNATIONAL SAS", "PANAMA", "06-ago-25"},
	{"Proveedor3", "BELUXE LATAM SA", "PANAMA", "06-ago-25"},
	{"Proveedor3", "DOLCE & GABBANA BEAUTY USA INC.", "PANAMA", "06-ago-25"},
	{"Proveedor3", "ESSENCE CORPORATION", "PANAMA", "06-ago-25"},
	{"Proveedor3", "ESTEE LAUDER AG LACHEN", "PANAMA", "06-ago-25"},
	{"Proveedor3", "MLL BRAND IMPORT LLC", "PANAMA", "06-ago-25"},
	{"Proveedor3", "SHISEIDO TRAVEL RETAIL AMERICAS", "PANAMA", "06-ago-25"},
	{"Proveedor3", "AGENCIAS FEDURO", "PANAMA", "10-sep-25"},
	{"Proveedor3", "BEAUTE PRESTIGE INTERNATIONAL SAS", "PANAMA", "06-sep-25"},
	{"Proveedor3", "BELUXE LATAM SA", "PANAMA", "06-sep-25"},
	{"Proveedor3", "DOLCE & GABBANA BEAUTY USA INC.", "PANAMA", "06-sep-25"},
	{"Proveedor3", "ESSENCE CORPORATION", "PANAMA", "06-sep-25"},
	{"Proveedor3", "ESTEE LAUDER AG LACHEN", "PANAMA", "06-sep-25"},
	{"Proveedor3", "MLL BRAND IMPORT LLC", "PANAMA", "06-sep-25"},
	{"Proveedor3", "SHISEIDO TRAVEL RETAIL AMERICAS", "PANAMA", "06-sep-25"},
	{"Proveedor3", "AGENCIAS FEDURO", "PANAMA", "10-oct-25"},
	{"Proveedor3", "BEAUTE PRESTIGE INTERNATIONAL SAS", "PANAMA", "06-oct-25"},
	{"Proveedor3", "BELUXE LATAM SA", "PANAMA", "06-oct-25"},
	{"Proveedor3", "DOLCE & GABBANA BEAUTY USA INC.", "PANAMA", "06-oct-25"},
	{"Proveedor3", "ESSENCE CORPORATION", "PANAMA", "06-oct-25"},
	{"Proveedor3", "ESTEE LAUDER AG LACHEN", "PANAMA", "06-oct-25"},
	{"Proveedor3", "MLL BRAND IMPORT LLC", "PANAMA", "06-oct-25"},
	{"Proveedor3", "SHISEIDO TRAVEL RETAIL AMERICAS", "PANAMA", "06-oct-25"},
	{"Proveedor3", "AGENCIAS FEDURO", "PANAMA", "10-nov-25"},
	{"Proveedor3", "BEAUTE PRESTIGE INTERNATIONAL SAS", "PANAMA", "06-nov-25"},
	{"Proveedor3", "BELUXE LATAM SA", "PANAMA", "06-nov-25"},
	{"Proveedor3", "DOLCE & GABBANA BEAUTY USA INC.", "PANAMA", "06-nov-25"},
	{"Proveedor3", "ESSENCE CORPORATION", "PANAMA", "06-nov-25"},
	{"Proveedor3", "ESTEE LAUDER AG LACHEN", "PANAMA", "06-nov-25"},
	{"Proveedor3", "MLL BRAND IMPORT LLC", "PANAMA", "06-nov-25"},
	{"Proveedor3", "SHISEIDO TRAVEL RETAIL AMERICAS", "PANAMA", "06-nov-25"},
	{"Proveedor3", "AGENCIAS FEDURO", "PANAMA", "10-dic-25"},
	{"Proveedor3", "BEAUTE PRESTIGE INTERNATIONAL SAS", "PANAMA", "06-dic-25"},
	{"Proveedor3", "BELUXE LATAM SA", "PANAMA", "06-dic-25"},
	{"Proveedor3", "DOLCE & GABBANA BEAUTY USA INC.", "PANAMA", "06-dic-25"},
	{"Proveedor3", "ESSENCE CORPORATION", "PANAMA", "06-dic-25"},
	{"Proveedor3", "ESTEE LAUDER AG LACHEN", "PANAMA", "06-dic-25"},
	{"Proveedor3", "MLL BRAND IMPORT LLC", "PANAMA", "06-dic-25"},
	{"Proveedor3", "SHISEIDO TRAVEL RETAIL AMERICAS", "PANAMA", "06-dic-25"},
}
