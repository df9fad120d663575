package storage

type Equipment struct {
	Category  string `json:"category"`
	Item      string `json:"item"`
	Quantity  int    `json:"quantity"`
	UnitCost  int    `json:"unitCost"`
	TotalCost int    `json:"totalCost"`
}

type Technology struct {
	Name string `json:"name"`
	Cost int    `json:"cost"`
	ROI  string `json:"roi"`
}

type Infrastructure struct {
	Equipment          []Equipment       `json:"equipment"`
	Technology         []Technology      `json:"technology"`
	RackingSystems     []string          `json:"rackingSystems"`
	ShiftCapacity      map[string]string `json:"shiftCapacity"`
	InvestmentRequired int               `json:"investmentRequired"`
}
