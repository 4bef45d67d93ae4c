package kommo

type customFieldValue struct {
	Value    string `json:"value"`
	EnumCode string `json:"enum_code,omitempty"`
}

type customField struct {
	FieldCode string             `json:"field_code"`
	Values    []customFieldValue `json:"values"`
}

type contactRequest struct {
	Name         string        `json:"name"`
	CustomFields []customField `json:"custom_fields_values"`
}

type tag struct {
	Name string `json:"name"`
}

type ref struct {
	ID int `json:"id"`
}

type leadEmbedded struct {
	Tags     []tag `json:"tags,omitempty"`
	Contacts []ref `json:"contacts"`
}

type leadRequest struct {
	Name     string       `json:"name"`
	StatusID int          `json:"status_id,omitempty"`
	Embedded leadEmbedded `json:"_embedded"`
}

type noteParams struct {
	Text string `json:"text"`
}

type noteRequest struct {
	EntityID int        `json:"entity_id"`
	NoteType string     `json:"note_type"`
	Params   noteParams `json:"params"`
}

// embeddedIDs cobre as respostas de /contacts e /leads, que só diferem
// na chave dentro de _embedded.
type embeddedIDs struct {
	Embedded struct {
		Contacts []ref `json:"contacts"`
		Leads    []ref `json:"leads"`
	} `json:"_embedded"`
}
