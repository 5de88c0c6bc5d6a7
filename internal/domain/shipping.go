package domain

// SettingKind 运费配置类型
type SettingKind string

const (
	SettingKindRate SettingKind = "rate"
	SettingKindTime SettingKind = "time"
)

func (k SettingKind) String() string {
	return string(k)
}

func (k SettingKind) IsValid() bool {
	return k == SettingKindRate || k == SettingKindTime
}

// Setting 按国家存储的运费配置。
//
// V 为除国家代码之外的全部取值字段，必须可比较，聚合时直接作为分组 key 使用。
type Setting[V comparable] interface {
	Country() string
	Value() V
}

// ChangeSet 一次保存需要同步到后端的变更
type ChangeSet[S any] struct {
	DeletedCountryCodes []string
	Upserted            []S
}

func (cs ChangeSet[S]) IsEmpty() bool {
	return len(cs.DeletedCountryCodes) == 0 && len(cs.Upserted) == 0
}
