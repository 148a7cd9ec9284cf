package classify

import "inquiry_server/core/domain"

// DefaultVocabulary returns the production controlled vocabulary: the six
// business categories with their keyword lists and the canonical English
// country display-name list. The caller owns the returned value and must
// treat it as immutable once handed to a pipeline.
func DefaultVocabulary() *domain.Vocabulary {
	names := []string{"sales", "marketing", "accounting", "partnership", "investment", "events"}
	return &domain.Vocabulary{
		CategoryNames: names,
		Categories: map[string][]string{
			"sales":       salesKeywords,
			"marketing":   marketingKeywords,
			"accounting":  accountingKeywords,
			"partnership": partnershipKeywords,
			"investment":  investmentKeywords,
			"events":      eventsKeywords,
		},
		Countries: countryNames,
	}
}

var salesKeywords = []string{
	"sale", "discount", "offer", "quote", "order", "purchase", "deal", "rfq",
	"bid", "pricing", "estimate", "proposal", "invoice", "contract", "customer",
	"client", "lead", "prospect", "opportunity", "sales order", "purchase order",
	"po", "buy", "sell", "payment terms", "fulfillment", "shipment", "delivery",
	"supply", "demand", "stock", "inventory", "product", "goods", "catalog",
	"price list", "commission", "wholesale", "retail", "distribution", "reseller",
	"freight quote", "freight rate", "rate request", "spot rate", "tender",
	"shipment booking", "booking request", "charter", "space allocation",
	"container sale", "container lease", "demurrage", "detention", "free time",
	"transit time", "transshipment", "routing order", "shipping instruction",
	"shipping order", "bill of lading", "bol", "awb", "air waybill", "sea waybill",
	"delivery order", "cargo release", "cargo manifest", "manifest", "packing list",
	"commercial invoice", "proforma invoice", "customs invoice", "export declaration",
	"import declaration", "customs clearance", "clearance", "brokerage",
	"customs broker", "forwarder", "freight forwarder", "nvocc", "ocean carrier",
	"trucking", "haulage", "drayage", "last mile", "cross docking", "consolidation",
	"groupage", "fcl", "lcl", "ftl", "ltl", "door to door", "port to port", "cfs",
	"bonded warehouse", "warehouse receipt", "cargo insurance", "marine insurance",
	"cargo claim", "damage claim", "freight collect", "freight prepaid", "incoterms",
	"exw", "fob", "cif", "dap", "ddp", "cfr", "cpt", "cip", "dpu", "eori", "hs code",
	"tariff", "duty", "importer", "exporter", "consignee", "shipper", "notify party",
	"liner", "carrier", "vessel", "voyage", "eta", "etd", "ata", "atd", "cut-off",
	"sailing", "rollover", "blank sailing", "cargo ready", "cargo pickup",
	"pickup order", "pod", "proof of delivery", "tracking", "shipment status",
	"shipment update", "shipment delay", "delay notice", "port congestion",
	"customs hold", "inspection", "quarantine", "fumigation", "phyto", "vgm",
	"verified gross mass", "gross weight", "net weight", "cbm", "cubic meter",
	"oversize", "overweight", "hazardous", "dangerous goods", "imo", "msds",
	"un number", "reefer", "refrigerated", "cold chain", "iso tank", "flexitank",
	"project cargo", "breakbulk", "ro-ro", "heavy lift", "out of gauge", "oog",
	"flat rack", "open top", "container type", "20gp", "40gp", "40hq", "45hc",
	"high cube", "dry van", "reefer container", "equipment release", "empty return",
	"chassis", "genset", "seal number", "container number", "booking number",
	"tracking number", "waybill number", "shipment number", "order number",
	"invoice number", "reference number",
}

var marketingKeywords = []string{
	"campaign", "promotion", "advertising", "social media", "newsletter",
	"branding", "brand", "webinar", "expo", "trade show", "press release",
	"publicity", "seo", "sem", "blog", "influencer", "sponsorship",
	"market research", "survey", "focus group", "lead generation", "outreach",
	"email blast", "marketing strategy", "digital marketing", "creative",
	"graphics", "commercial", "announcement", "launch", "rollout", "awareness",
	"engagement", "audience", "target market", "demographic", "insight", "trend",
	"brand ambassador", "logistics expo", "transportation conference",
	"shipping seminar", "supply chain summit", "freight webinar", "carrier event",
	"port open day", "warehouse tour", "demo day", "product launch",
	"service launch", "case study", "white paper", "industry report",
	"market update", "logistics award", "best practice", "customer story",
	"testimonial", "success story", "thought leadership", "industry insight",
	"market trend", "logistics trend", "supply chain trend", "freight trend",
	"port news", "logistics news", "logistics blog", "digitalization",
	"smart logistics", "automation", "telematics", "visibility platform",
	"control tower", "real-time tracking", "live tracking", "container tracking",
	"milestone update", "status update", "newsletter signup",
	"newsletter subscription", "newsletter campaign",
}

var accountingKeywords = []string{
	"payment", "receipt", "bill", "statement", "balance", "accounts payable",
	"accounts receivable", "ledger", "reconciliation", "audit", "tax", "vat",
	"gst", "withholding", "remittance", "wire", "transfer", "swift", "iban",
	"accounting", "bookkeeping", "expense", "reimbursement", "payroll", "salary",
	"wage", "compensation", "fee", "charge", "budget", "forecast", "financial",
	"finance", "profit", "loss", "p&l", "cash flow", "credit", "debit", "overdue",
	"collection", "reminder", "settlement", "clearing", "deposit", "withdrawal",
	"fiscal", "year end", "freight invoice", "freight bill", "shipping invoice",
	"ocean freight invoice", "air freight invoice", "trucking invoice",
	"duty invoice", "vat invoice", "gst invoice", "demurrage invoice",
	"detention invoice", "storage invoice", "handling invoice", "terminal invoice",
	"port invoice", "agency invoice", "commission invoice", "brokerage invoice",
	"forwarder invoice", "carrier invoice", "collect charge", "prepaid charge",
	"collect payment", "prepaid payment",
}

var partnershipKeywords = []string{
	"partner", "collaboration", "affiliate", "alliance", "joint venture",
	"cooperation", "synergy", "partnership", "strategic partner",
	"business partner", "teaming", "consortium", "association", "franchise",
	"licensing", "distribution agreement", "mou", "memorandum of understanding",
	"nda", "non-disclosure", "co-branding", "integration", "ecosystem",
	"partnership proposal", "partnership opportunity", "partnership request",
	"partnership inquiry", "partnership offer", "partnership agreement",
	"logistics partner", "shipping partner", "supply chain partner",
	"freight partner", "carrier partner", "forwarder partner", "nvocc partner",
	"trucking partner", "customs partner", "broker partner", "warehouse partner",
	"distribution partner", "technology partner", "integration partner",
	"platform partner", "port partner", "terminal partner", "agency partner",
	"network partner",
}

var investmentKeywords = []string{
	"invest", "funding", "capital", "seed", "venture", "angel", "series a",
	"series b", "series c", "private equity", "ipo", "equity", "valuation",
	"investor", "investment", "fund", "financing", "crowdfunding", "pitch",
	"business plan", "roi", "exit", "acquisition", "merger", "buyout",
	"due diligence", "term sheet", "convertible note", "syndicate", "portfolio",
	"asset", "liability", "debt", "loan", "grant", "subsidy", "dividend",
	"yield", "capital gain", "liquidity", "seed round", "pre-seed",
	"bridge round", "follow-on", "lead investor", "co-investor",
	"limited partner", "general partner", "logistics investment",
	"shipping investment", "supply chain investment", "freight investment",
	"technology investment", "port investment", "terminal investment",
}

var eventsKeywords = []string{
	"event", "conference", "summit", "meetup", "workshop", "seminar", "training",
	"bootcamp", "hackathon", "competition", "award", "ceremony", "gala",
	"networking", "session", "panel", "talk", "presentation", "keynote",
	"exhibition", "showcase", "fair", "festival", "opening", "celebration",
	"gathering", "reception", "banquet", "symposium", "forum", "roundtable",
	"retreat", "site visit", "open house", "registration", "invitation", "rsvp",
	"agenda", "schedule", "program", "speaker", "sponsor", "exhibitor",
	"attendee", "organizer", "venue", "ticket", "badge", "booth", "stand",
	"demo", "follow-up", "feedback", "photo", "gallery", "recording", "stream",
	"broadcast", "virtual", "in-person", "hybrid", "logistics event",
	"shipping event", "supply chain event", "freight event", "customs event",
	"warehouse event", "technology event", "port event", "terminal event",
}

// countryNames is the canonical English country display-name list.
var countryNames = []string{
	"Afghanistan", "Albania", "Algeria", "Andorra", "Angola",
	"Antigua and Barbuda", "Argentina", "Armenia", "Australia", "Austria",
	"Azerbaijan", "Bahamas", "Bahrain", "Bangladesh", "Barbados", "Belarus",
	"Belgium", "Belize", "Benin", "Bhutan", "Bolivia", "Bosnia and Herzegovina",
	"Botswana", "Brazil", "Brunei", "Bulgaria", "Burkina Faso", "Burundi",
	"Cambodia", "Cameroon", "Canada", "Cape Verde", "Central African Republic",
	"Chad", "Chile", "China", "Colombia", "Comoros", "Congo", "Costa Rica",
	"Croatia", "Cuba", "Cyprus", "Czechia", "Denmark", "Djibouti", "Dominica",
	"Dominican Republic", "Ecuador", "Egypt", "El Salvador",
	"Equatorial Guinea", "Eritrea", "Estonia", "Eswatini", "Ethiopia", "Fiji",
	"Finland", "France", "Gabon", "Gambia", "Georgia", "Germany", "Ghana",
	"Greece", "Grenada", "Guatemala", "Guinea", "Guinea-Bissau", "Guyana",
	"Haiti", "Honduras", "Hungary", "Iceland", "India", "Indonesia", "Iran",
	"Iraq", "Ireland", "Israel", "Italy", "Ivory Coast", "Jamaica", "Japan",
	"Jordan", "Kazakhstan", "Kenya", "Kiribati", "Kuwait", "Kyrgyzstan",
	"Laos", "Latvia", "Lebanon", "Lesotho", "Liberia", "Libya",
	"Liechtenstein", "Lithuania", "Luxembourg", "Madagascar", "Malawi",
	"Malaysia", "Maldives", "Mali", "Malta", "Marshall Islands", "Mauritania",
	"Mauritius", "Mexico", "Micronesia", "Moldova", "Monaco", "Mongolia",
	"Montenegro", "Morocco", "Mozambique", "Myanmar", "Namibia", "Nauru",
	"Nepal", "Netherlands", "New Zealand", "Nicaragua", "Niger", "Nigeria",
	"North Korea", "North Macedonia", "Norway", "Oman", "Pakistan", "Palau",
	"Panama", "Papua New Guinea", "Paraguay", "Peru", "Philippines", "Poland",
	"Portugal", "Qatar", "Romania", "Russia", "Rwanda", "Saint Kitts and Nevis",
	"Saint Lucia", "Saint Vincent and the Grenadines", "Samoa", "San Marino",
	"Sao Tome and Principe", "Saudi Arabia", "Senegal", "Serbia", "Seychelles",
	"Sierra Leone", "Singapore", "Slovakia", "Slovenia", "Solomon Islands",
	"Somalia", "South Africa", "South Korea", "South Sudan", "Spain",
	"Sri Lanka", "Sudan", "Suriname", "Sweden", "Switzerland", "Syria",
	"Taiwan", "Tajikistan", "Tanzania", "Thailand", "Timor-Leste", "Togo",
	"Tonga", "Trinidad and Tobago", "Tunisia", "Turkey", "Turkmenistan",
	"Tuvalu", "Uganda", "Ukraine", "United Arab Emirates", "United Kingdom",
	"United States", "Uruguay", "Uzbekistan", "Vanuatu", "Venezuela",
	"Vietnam", "Yemen", "Zambia", "Zimbabwe",
}
