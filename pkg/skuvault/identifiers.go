package skuvault

// ItemIdentifier selects which vendor field carries a product identifier in
// single-item inventory payloads. SkuVault accepts a product's SKU, its
// alternate code, or its part number, each under a different JSON key.
type ItemIdentifier int

const (
	IdentifierSku ItemIdentifier = iota
	IdentifierCode
	IdentifierPartNumber
)

// FieldName returns the vendor JSON key for this identifier kind.
func (i ItemIdentifier) FieldName() string {
	switch i {
	case IdentifierCode:
		return "Code"
	case IdentifierPartNumber:
		return "PartNumber"
	default:
		return "Sku"
	}
}

func (i ItemIdentifier) String() string { return i.FieldName() }
