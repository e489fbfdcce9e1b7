// Package papi scores the PAPI-Kostick preference inventory: role tallies,
// three-band interpretation per role, aspect grouping and a summary.
package papi

// Role is one of the 20 scored preferences.
type Role struct {
	ID            int    `json:"role_id"`
	Code          string `json:"code"`
	AspectID      int    `json:"aspect_id"`
	Name          string `json:"name"`
	NameLocalized string `json:"name_localized"`
	Description   string `json:"description"`
}

// Aspect groups four roles.
type Aspect struct {
	ID      int    `json:"aspect_id"`
	Name    string `json:"name"`
	RoleIDs [4]int `json:"role_ids"`
}

// Rule is one interpretation band over role scores.
type Rule struct {
	Low      int    `json:"low"`
	High     int    `json:"high"`
	Category string `json:"category"`
	Label    string `json:"label"`
	Template string `json:"description_template"`
}

const (
	CategoryLower   = "Lower"
	CategoryMiddle  = "Middle"
	CategoryHigher  = "Higher"
	CategoryUnknown = "Unknown"
)

var roles = [20]Role{
	{1, "A", 1, "Leadership Role", "Peran sebagai Pemimpin",
		"Kecenderungan untuk mengambil peran memimpin dan mengarahkan kelompok."},
	{2, "B", 1, "Ease in Decision Making", "Kemudahan Mengambil Keputusan",
		"Kecepatan dan keyakinan dalam mengambil keputusan."},
	{3, "C", 1, "Need to Control Others", "Kebutuhan Mengendalikan Orang Lain",
		"Keinginan untuk mengatur dan bertanggung jawab atas pekerjaan orang lain."},
	{4, "D", 1, "Need to Achieve", "Kebutuhan Berprestasi",
		"Dorongan untuk mencapai target dan hasil yang menonjol."},
	{5, "E", 2, "Need to Finish a Task", "Kebutuhan Menyelesaikan Tugas",
		"Ketekunan untuk menuntaskan pekerjaan yang sudah dimulai."},
	{6, "F", 2, "Role of Hard Intense Worker", "Peran sebagai Pekerja Keras",
		"Kesediaan bekerja keras dan mengerahkan usaha penuh."},
	{7, "G", 2, "Need to Support Authority", "Kebutuhan Mendukung Atasan",
		"Loyalitas dan keinginan membantu pihak yang berwenang."},
	{8, "H", 2, "Need for Rules and Supervision", "Kebutuhan akan Aturan dan Pengawasan",
		"Kebutuhan akan arahan, aturan dan pengawasan yang jelas."},
	{9, "I", 3, "Work Pace", "Tempo Kerja",
		"Kecepatan dan kesigapan dalam bekerja."},
	{10, "J", 3, "Vigorous Type", "Semangat dan Vitalitas",
		"Energi fisik dan keinginan untuk aktif bergerak."},
	{11, "K", 3, "Need for Change", "Kebutuhan akan Perubahan",
		"Keterbukaan terhadap hal baru dan variasi dalam pekerjaan."},
	{12, "L", 3, "Need to be Forceful", "Kebutuhan untuk Bersikap Agresif",
		"Kecenderungan menghadapi tantangan dan mempertahankan pendapat secara terbuka."},
	{13, "M", 4, "Need to be Noticed", "Kebutuhan untuk Diperhatikan",
		"Keinginan untuk menjadi pusat perhatian."},
	{14, "N", 4, "Social Extension", "Keluwesan Sosial",
		"Kemudahan dalam bergaul dan menjalin hubungan baru."},
	{15, "O", 4, "Need to Belong to Groups", "Kebutuhan Diterima Kelompok",
		"Keinginan menjadi bagian dari kelompok dan diterima oleh rekan."},
	{16, "P", 4, "Need for Closeness and Affection", "Kebutuhan akan Kedekatan",
		"Kebutuhan akan hubungan yang akrab dan penuh perhatian."},
	{17, "Q", 5, "Theoretical Type", "Tipe Teoritis",
		"Minat pada gagasan, konsep dan pemikiran abstrak."},
	{18, "R", 5, "Interest in Working with Details", "Minat Bekerja dengan Detail",
		"Ketelitian dan kesenangan menangani hal-hal rinci."},
	{19, "S", 5, "Organized Type", "Tipe Teratur",
		"Kecenderungan bekerja secara terencana dan tertata."},
	{20, "T", 5, "Emotional Restraint", "Pengendalian Emosi",
		"Kemampuan menahan dan mengelola ekspresi emosi."},
}

var aspects = [5]Aspect{
	{1, "Kepemimpinan", [4]int{1, 2, 3, 4}},
	{2, "Arah Kerja", [4]int{5, 6, 7, 8}},
	{3, "Aktivitas", [4]int{9, 10, 11, 12}},
	{4, "Sifat Sosial", [4]int{13, 14, 15, 16}},
	{5, "Gaya Kerja", [4]int{17, 18, 19, 20}},
}

var rules = [3]Rule{
	{0, 2, CategoryLower, "Rendah", "Kecenderungan pada aspek %s tergolong rendah dan jarang muncul dalam perilaku kerja."},
	{3, 5, CategoryMiddle, "Sedang", "Kecenderungan pada aspek %s berada pada taraf wajar dan muncul sesuai situasi."},
	{6, 9, CategoryHigher, "Tinggi", "Kecenderungan pada aspek %s tergolong tinggi dan menonjol dalam perilaku kerja."},
}

var unknownRule = Rule{Low: -1, High: -1, Category: CategoryUnknown, Label: "-", Template: "Skor tidak dapat diinterpretasikan."}

const (
	summaryNone   = "Tidak ada dimensi yang menonjol secara khusus."
	summaryPrefix = "Dimensi yang menonjol: "
)

// Roles returns the role catalog in id order.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles[:])
	return out
}

// Aspects returns the aspect catalog in id order.
func Aspects() []Aspect {
	out := make([]Aspect, len(aspects))
	copy(out, aspects[:])
	return out
}

// Rules returns the interpretation bands in ascending order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules[:])
	return out
}

// RoleByID looks a role up by its 1-based id.
func RoleByID(id int) (Role, bool) {
	if id < 1 || id > len(roles) {
		return Role{}, false
	}
	return roles[id-1], true
}
