package domain

// SaveStatus 保存结果
type SaveStatus string

const (
	SaveStatusSuccess SaveStatus = "success"
	SaveStatusFailure SaveStatus = "failure"
)

func (s SaveStatus) String() string {
	return string(s)
}

// SaveLog 运费配置保存记录
type SaveLog struct {
	Id                  uint64      `json:"id"`
	Kind                SettingKind `json:"kind"`
	Operator            string      `json:"operator"`
	DeletedCountryCodes []string    `json:"deleted_country_codes"`
	Upserted            string      `json:"upserted"` // json
	Status              SaveStatus  `json:"status"`
	Error               string      `json:"error,omitempty"`
	CreateAt            int64       `json:"create_at"`
}
