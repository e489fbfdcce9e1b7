package disc

import "strings"

// PatternInfo is one catalog entry. Behaviour and Jobs are comma separated.
type PatternInfo struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Pattern     string `json:"pattern"`
	Behaviour   string `json:"behaviour"`
	Jobs        string `json:"jobs"`
	Description string `json:"description"`
}

// Pattern returns the catalog entry for id; unknown ids map to entry 0.
func Pattern(id int) PatternInfo {
	if id < 0 || id >= len(patternCatalog) {
		id = 0
	}
	return patternCatalog[id]
}

// Patterns returns a copy of the whole catalog, entry 0 included.
func Patterns() []PatternInfo {
	out := make([]PatternInfo, len(patternCatalog))
	copy(out, patternCatalog[:])
	return out
}

func resultFor(line Line, id int) LineResult {
	p := Pattern(id)
	return LineResult{
		Label:       line.Label(),
		PatternID:   p.ID,
		Type:        p.Type,
		Pattern:     p.Pattern,
		Behaviour:   splitList(p.Behaviour, false),
		Description: p.Description,
		Jobs:        splitList(p.Jobs, true),
	}
}

func splitList(s string, dropEmpty bool) []string {
	out := []string{}
	if strings.TrimSpace(s) == "" {
		return out
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" && dropEmpty {
			continue
		}
		out = append(out, part)
	}
	return out
}

var patternCatalog = [41]PatternInfo{
	{0, "-", "Tidak Terdefinisi", "", "",
		"Pola grafik tidak dapat diklasifikasikan ke dalam salah satu profil. Disarankan pengulangan tes atau wawancara lanjutan."},
	{1, "C", "Logical Thinker",
		"Teliti, Analitis, Sistematis, Berhati-hati, Patuh pada standar",
		"Akuntan, Auditor, Analis Data, Quality Control, Programmer",
		"Berpikir logis dan berpegang pada fakta. Menyukai prosedur yang jelas dan menghindari keputusan yang belum teruji."},
	{2, "D", "Establisher",
		"Tegas, Mandiri, Berorientasi hasil, Menyukai tantangan, Tidak sabar",
		"Manajer Proyek, Wirausaha, Kepala Cabang, Supervisor Produksi,",
		"Individualis yang kuat dan menetapkan standar tinggi bagi diri sendiri maupun orang lain. Cenderung mengambil alih kendali."},
	{3, "I", "Communicator",
		"Antusias, Ramah, Ekspresif, Optimis, Mudah bergaul",
		"Public Relations, Sales, Presenter, Event Organizer, Trainer",
		"Senang berinteraksi dan mempengaruhi orang lain melalui cara yang hangat. Kurang menyukai pekerjaan detail yang berulang."},
	{4, "S", "Specialist",
		"Sabar, Stabil, Setia, Pendengar yang baik, Konsisten",
		"Administrasi, Customer Service, Teknisi, Staf Gudang, Perawat",
		"Bekerja dengan ritme yang tetap dan dapat diandalkan. Membutuhkan waktu untuk menyesuaikan diri dengan perubahan."},
	{5, "D-I", "Result-Oriented",
		"Percaya diri, Cepat bertindak, Persuasif, Kompetitif, Kurang sabar terhadap detail",
		"Sales Manager, Business Development, Wirausaha, Konsultan",
		"Mengejar hasil dengan cepat dan memanfaatkan kemampuan mempengaruhi orang untuk mencapainya."},
	{6, "D-S", "Achiever",
		"Gigih, Bertanggung jawab, Fokus pada target, Tekun, Mandiri",
		"Supervisor, Kepala Produksi, Koordinator Lapangan, Engineer",
		"Pekerja keras yang menuntaskan tugas sampai selesai. Lebih percaya pada usahanya sendiri dibanding bantuan orang lain."},
	{7, "D-C", "Creative",
		"Inovatif, Kritis, Perfeksionis, Tegas, Berpandangan jauh",
		"Perancang Produk, Arsitek, Research & Development, Konsultan Teknik",
		"Menggabungkan dorongan untuk hasil dengan standar kualitas tinggi. Menyukai ide baru yang dapat dibuktikan."},
	{8, "I-D", "Persuader",
		"Meyakinkan, Energik, Berani tampil, Suka memimpin, Spontan",
		"Sales Executive, Negosiator, Marketing, Politisi, Rekruter",
		"Mampu menggerakkan orang untuk bergabung dalam tujuannya. Bekerja paling baik dengan kebebasan dan variasi."},
	{9, "I-S", "Counselor",
		"Hangat, Empatik, Suportif, Mudah didekati, Menghindari konflik",
		"Konselor, HR Officer, Guru, Customer Relations, Perawat",
		"Membangun hubungan yang akrab dan membuat orang lain merasa diterima. Cenderung terlalu toleran."},
	{10, "I-C", "Appraiser",
		"Komunikatif, Cermat, Kreatif, Berorientasi kualitas, Diplomatis",
		"Desainer, Copywriter, Account Executive, Trainer, Quality Assurance",
		"Memadukan kemampuan bergaul dengan perhatian pada hasil yang rapi. Ingin ide-idenya diakui orang lain."},
	{11, "S-D", "Self-Motivated",
		"Tekun, Mandiri, Tenang, Bertekad, Fokus",
		"Teknisi Senior, Operator Ahli, Analis, Petugas Lapangan",
		"Termotivasi dari dalam dan bekerja dengan stabil hingga tuntas tanpa banyak pengawasan."},
	{12, "S-I", "Agent",
		"Ramah, Kooperatif, Penuh perhatian, Setia, Mudah menolong",
		"Customer Service, Sekretaris, Front Office, Staf Kesejahteraan",
		"Berorientasi pada orang dan menjaga keharmonisan tim. Bekerja baik dalam lingkungan yang mendukung."},
	{13, "S-C", "Peace Maker",
		"Tenang, Teliti, Taat aturan, Sabar, Dapat diandalkan",
		"Administrasi Keuangan, Arsiparis, Staf Legal, Operator Sistem",
		"Menyukai lingkungan yang stabil dan terstruktur. Menjaga kualitas kerja dengan ritme yang konsisten."},
	{14, "C-D", "Designer",
		"Analitis, Tegas, Berstandar tinggi, Objektif, Kritis",
		"Engineer, Arsitek Sistem, Auditor Senior, Perencana Strategis",
		"Mengambil keputusan berdasarkan analisis yang mendalam lalu mendorong pelaksanaannya dengan tegas."},
	{15, "C-I", "Practitioner",
		"Terampil, Teliti, Ramah, Ingin diakui keahliannya, Profesional",
		"Dokter, Instruktur Teknis, Konsultan Spesialis, Analis Bisnis",
		"Mengembangkan keahlian tertentu dan senang dihargai sebagai ahli di bidangnya."},
	{16, "C-S", "Perfectionist",
		"Sistematis, Presisi, Hati-hati, Setia pada prosedur, Diplomatis",
		"Akuntan, Quality Control, Apoteker, Peneliti, Staf Pajak,",
		"Menjunjung standar kualitas yang tinggi dan mengikuti prosedur dengan konsisten."},
	{17, "D-I-S", "Inspirational",
		"Karismatik, Tegas, Mampu mengarahkan orang, Antusias, Peduli tim",
		"Direktur, Manajer Umum, Pemimpin Organisasi, Motivator",
		"Mempengaruhi sikap dan tindakan orang lain untuk tujuan bersama sambil tetap menjaga tim."},
	{18, "D-I-C", "Negotiator",
		"Persuasif, Tajam, Kompetitif, Analitis, Berani mengambil keputusan",
		"Negosiator, Manajer Pemasaran, Pengacara, Konsultan Bisnis",
		"Menggunakan argumen yang kuat dan data untuk memenangkan kesepakatan."},
	{19, "D-S-I", "Director",
		"Bertanggung jawab, Stabil, Tegas, Suportif, Berorientasi target",
		"Kepala Departemen, Manajer Operasional, Koordinator Tim",
		"Mengarahkan tim dengan tegas namun tetap menjaga kestabilan dan kebersamaan."},
	{20, "D-S-C", "Investigator",
		"Objektif, Gigih, Analitis, Tenang, Tidak mudah menyerah",
		"Investigator, Auditor Internal, Engineer Pemeliharaan, Peneliti",
		"Menelusuri masalah sampai ke akarnya dengan kesabaran dan ketegasan."},
	{21, "D-C-I", "Challenger",
		"Kritis, Berani, Berstandar tinggi, Ekspresif, Cepat",
		"Manajer Produk, Konsultan Manajemen, Kepala Proyek Teknik",
		"Menantang cara lama dan mendorong perbaikan dengan argumen yang tajam."},
	{22, "D-C-S", "Reformer",
		"Disiplin, Terstruktur, Tegas, Konsisten, Berorientasi mutu",
		"Manajer Quality, Kepala Pabrik, Perencana Produksi",
		"Memperbaiki sistem kerja agar lebih efisien dan menegakkannya dengan disiplin."},
	{23, "I-D-S", "Motivator",
		"Bersemangat, Meyakinkan, Hangat, Berani, Mendorong orang lain",
		"Team Leader Sales, Trainer, Fasilitator, Community Manager",
		"Membangkitkan semangat orang lain dan menggerakkan mereka dengan cara yang menyenangkan."},
	{24, "I-D-C", "Promoter",
		"Optimis, Kreatif, Persuasif, Percaya diri, Menyukai sorotan",
		"Brand Manager, Marketing Communication, Presenter, Event Manager",
		"Pandai mempromosikan ide dan produk dengan cara yang menarik dan terencana."},
	{25, "I-S-D", "Mentor",
		"Sabar, Membimbing, Komunikatif, Tegas bila perlu, Peduli",
		"Coach, Guru, Supervisor Pelatihan, HR Development",
		"Senang membimbing orang lain berkembang sambil tetap menuntut hasil yang jelas."},
	{26, "I-S-C", "Advisor",
		"Hangat, Pendengar yang baik, Cermat, Diplomatis, Membantu",
		"Konsultan, Customer Relations, Konselor Karier, Staf HR",
		"Memberi saran dengan hangat dan mempertimbangkan perasaan orang lain."},
	{27, "I-C-D", "Assessor",
		"Komunikatif, Analitis, Kritis, Percaya diri, Objektif",
		"Asesor, Rekruter, Analis Pemasaran, Business Analyst",
		"Menilai orang dan situasi dengan cermat lalu mengomunikasikan hasilnya secara meyakinkan."},
	{28, "I-C-S", "Responsive & Thoughtful",
		"Ramah, Penuh pertimbangan, Rapi, Sopan, Responsif",
		"Customer Care, Guest Relations, Staf Administrasi Layanan",
		"Cepat tanggap terhadap kebutuhan orang lain sambil tetap menjaga ketelitian."},
	{29, "S-D-I", "Personal Achiever",
		"Pekerja keras, Stabil, Mandiri, Bersahabat, Tekun",
		"Koordinator Operasional, Staf Teknis Senior, Wiraswasta",
		"Mencapai target pribadi dengan kerja keras yang konsisten dan hubungan yang baik."},
	{30, "S-D-C", "Organizer",
		"Teratur, Tekun, Teliti, Bertanggung jawab, Tegas",
		"Supervisor Logistik, Office Manager, Koordinator Administrasi",
		"Mengatur pekerjaan dan sumber daya secara rapi agar target tercapai."},
	{31, "S-I-D", "Team Builder",
		"Suportif, Ramah, Stabil, Mampu menggerakkan tim, Setia",
		"Team Leader, Supervisor Layanan, Koordinator Relawan",
		"Membangun tim yang solid dengan kehangatan dan konsistensi."},
	{32, "S-I-C", "Mediator",
		"Tenang, Diplomatis, Sabar, Adil, Menghindari konflik",
		"Mediator, Staf Hubungan Industrial, Konselor, Customer Service",
		"Menengahi perbedaan dengan tenang dan mencari jalan tengah yang diterima semua pihak."},
	{33, "S-C-D", "Organized Supporter",
		"Rapi, Teliti, Setia, Patuh prosedur, Konsisten",
		"Staf Administrasi, Sekretaris, Staf Keuangan, Petugas Arsip",
		"Mendukung tim dengan pekerjaan yang teratur dan dapat diandalkan."},
	{34, "S-C-I", "Harmonizer",
		"Sabar, Cermat, Ramah, Kooperatif, Menjaga suasana",
		"Staf Layanan, Perawat, Administrasi Sekolah, Resepsionis",
		"Menjaga suasana kerja yang harmonis sambil menyelesaikan tugas dengan rapi."},
	{35, "C-D-I", "Strategist",
		"Analitis, Visioner, Tegas, Komunikatif, Terencana",
		"Perencana Strategis, Konsultan, Manajer Riset, Analis Kebijakan",
		"Menyusun strategi berdasarkan data dan meyakinkan orang lain untuk menjalankannya."},
	{36, "C-D-S", "Objective Thinker",
		"Objektif, Logis, Tegas, Tenang, Berpegang pada data",
		"Auditor, Analis Risiko, Engineer, Peneliti, Programmer",
		"Mengandalkan pemikiran yang logis dan objektif dalam setiap keputusan."},
	{37, "C-I-D", "Planner",
		"Terencana, Detail, Persuasif, Tegas, Inisiatif",
		"Perencana Proyek, Event Planner, Konsultan Implementasi",
		"Merencanakan pekerjaan secara detail dan mengomunikasikannya dengan jelas."},
	{38, "C-I-S", "Diplomat",
		"Sopan, Teliti, Diplomatis, Sabar, Komunikatif",
		"Staf Hubungan Masyarakat, Legal Officer, Sekretaris Direksi",
		"Menyampaikan hal sulit dengan cara yang halus dan tetap akurat."},
	{39, "C-S-D", "Conservative",
		"Berhati-hati, Konsisten, Tradisional, Teliti, Disiplin",
		"Staf Keuangan, Administrasi Pajak, Petugas Kepatuhan",
		"Memegang teguh cara kerja yang sudah terbukti dan waspada terhadap risiko."},
	{40, "C-S-I", "Analyst",
		"Cermat, Sistematis, Tenang, Kooperatif, Berorientasi fakta",
		"Analis Data, Peneliti, Staf Laboratorium, Quality Assurance",
		"Mengolah informasi secara sistematis dan menyajikannya dengan rapi kepada tim."},
}
