package hime

// TableInfo describes one built-in GTAB method for host enumeration,
// before it is ever loaded from disk (spec.md §4.L "A static built-in
// registry enumerates ~21 well-known GTAB tables").
type TableInfo struct {
	ID       int
	Name     string // Chinese display name
	Filename string
	Icon     string
}

// builtinTables is the static registry. Filenames follow HIME's on-disk
// convention of a short ASCII stem plus ".gtab" / ".cin2"-style extension;
// the loader itself is format-agnostic and detects v1 vs v2 by magic.
var builtinTables = []TableInfo{
	{1, "倉頡", "cj.gtab", "cj.png"},
	{2, "嘸蝦米", "array30.gtab", "boshiamy.png"},
	{3, "行列", "array.gtab", "array.png"},
	{4, "大易", "dayi.gtab", "dayi.png"},
	{5, "無蝦米", "wubi.gtab", "wubi.png"},
	{6, "注音二式", "phonetic2.gtab", "phonetic2.png"},
	{7, "簡易", "simplex.gtab", "simplex.png"},
	{8, "速成", "quick.gtab", "quick.png"},
	{9, "拼音", "pinyin.gtab", "pinyin.png"},
	{10, "倉頡六代", "cj6.gtab", "cj6.png"},
	{11, "倉頡五代", "cj5.gtab", "cj5.png"},
	{12, "嘸蝦米二代", "array40.gtab", "array40.png"},
	{13, "自然注音", "intelligent-pinyin.gtab", "ipinyin.png"},
	{14, "漢音", "hanyu.gtab", "hanyu.png"},
	{15, "精業一號", "genius1.gtab", "genius1.png"},
	{16, "精業二號", "genius2.gtab", "genius2.png"},
	{17, "鄭碼", "zhengma.gtab", "zhengma.png"},
	{18, "北極星", "beixin.gtab", "beixin.png"},
	{19, "超強五筆", "wubi98.gtab", "wubi98.png"},
	{20, "九方", "jiufang.gtab", "jiufang.png"},
	{21, "行列三十", "array30b.gtab", "array30b.png"},
}

// BuiltinTableByID finds a registry entry by numeric id.
func BuiltinTableByID(id int) (TableInfo, bool) {
	for _, info := range builtinTables {
		if info.ID == id {
			return info, true
		}
	}
	return TableInfo{}, false
}

// ListBuiltinTables returns the full static registry, for UI enumeration
// (spec.md §4.L) before any table has been loaded.
func ListBuiltinTables() []TableInfo {
	out := make([]TableInfo, len(builtinTables))
	copy(out, builtinTables)
	return out
}
