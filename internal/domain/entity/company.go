package entity

// Company identifies a party on a billing document. It is a value object:
// it has no identity of its own and is embedded by value in both the
// issuing ("from") and receiving ("target") roles.
type Company struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
	Tel     string `json:"tel,omitempty"`
}
