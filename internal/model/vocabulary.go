package model

// FieldVocabulary 逻辑字段 -> 表头同义词列表（按优先级排序，靠前优先）
type FieldVocabulary struct {
	OrderID      []string `toml:"order_id" json:"orderId"`
	DeliveryDate []string `toml:"delivery_date" json:"deliveryDate"`
	Items        []string `toml:"items" json:"items"`
	Notes        []string `toml:"notes" json:"notes"`
}

// IngestVocabulary 摄入词表：字段同义词 + 包装类 SKU 前缀码
// 作为显式配置面暴露，便于用别的词表测试核心管线
type IngestVocabulary struct {
	Fields         FieldVocabulary `toml:"fields" json:"fields"`
	PackagingCodes []string        `toml:"packaging_codes" json:"packagingCodes"`
}

// DefaultVocabulary 默认词表
func DefaultVocabulary() IngestVocabulary {
	return IngestVocabulary{
		Fields: FieldVocabulary{
			OrderID:      []string{"Order Number", "Order No", "Order ID", "Order #", "Order"},
			DeliveryDate: []string{"Delivery Date", "Dispatch Date", "Ship Date", "Date"},
			Items:        []string{"Offline Items", "Items", "Line Items", "Order Items", "Products"},
			Notes:        []string{"Notes", "Delivery Notes", "Order Notes", "Comments"},
		},
		PackagingCodes: []string{"PKG", "HAMP", "BOX", "BAG"},
	}
}
