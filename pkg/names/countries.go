package names

// Countries uses the stats gateway's spelling for Name and the timeline
// source's spelling for ChartName.
var Countries = []Country{
	{"Afghanistan", "AF", "AFG", nil, ""},
	{"Albania", "AL", "ALB", nil, ""},
	{"Algeria", "DZ", "DZA", nil, ""},
	{"Andorra", "AD", "AND", nil, ""},
	{"Angola", "AO", "AGO", nil, ""},
	{"Anguilla", "AI", "AIA", nil, ""},
	{"Antigua and Barbuda", "AG", "ATG", []string{"Antigua"}, ""},
	{"Argentina", "AR", "ARG", nil, ""},
	{"Armenia", "AM", "ARM", nil, ""},
	{"Aruba", "AW", "ABW", nil, ""},
	{"Australia", "AU", "AUS", nil, ""},
	{"Austria", "AT", "AUT", nil, ""},
	{"Azerbaijan", "AZ", "AZE", nil, ""},
	{"Bahamas", "BS", "BHS", []string{"The Bahamas"}, ""},
	{"Bahrain", "BH", "BHR", nil, ""},
	{"Bangladesh", "BD", "BGD", nil, ""},
	{"Barbados", "BB", "BRB", nil, ""},
	{"Belarus", "BY", "BLR", nil, ""},
	{"Belgium", "BE", "BEL", nil, ""},
	{"Belize", "BZ", "BLZ", nil, ""},
	{"Benin", "BJ", "BEN", nil, ""},
	{"Bermuda", "BM", "BMU", nil, ""},
	{"Bhutan", "BT", "BTN", nil, ""},
	{"Bolivia", "BO", "BOL", nil, ""},
	{"Bosnia", "BA", "BIH", []string{"Bosnia and Herzegovina", "Bosnia-Herzegovina"}, "Bosnia and Herzegovina"},
	{"Botswana", "BW", "BWA", nil, ""},
	{"Brazil", "BR", "BRA", []string{"Brasil"}, ""},
	{"British Virgin Islands", "VG", "VGB", nil, ""},
	{"Brunei", "BN", "BRN", []string{"Brunei Darussalam"}, ""},
	{"Bulgaria", "BG", "BGR", nil, ""},
	{"Burkina Faso", "BF", "BFA", nil, ""},
	{"Burundi", "BI", "BDI", nil, ""},
	{"Cabo Verde", "CV", "CPV", []string{"Cape Verde"}, ""},
	{"Cambodia", "KH", "KHM", nil, ""},
	{"Cameroon", "CM", "CMR", nil, ""},
	{"Canada", "CA", "CAN", nil, ""},
	{"Caribbean Netherlands", "BQ", "BES", []string{"Bonaire"}, ""},
	{"Cayman Islands", "KY", "CYM", nil, ""},
	{"Central African Republic", "CF", "CAF", []string{"CAR"}, ""},
	{"Chad", "TD", "TCD", nil, ""},
	{"Chile", "CL", "CHL", nil, ""},
	{"China", "CN", "CHN", []string{"Mainland China", "PRC"}, ""},
	{"Colombia", "CO", "COL", nil, ""},
	{"Comoros", "KM", "COM", nil, ""},
	{"Congo", "CG", "COG", []string{"Republic of the Congo", "Congo-Brazzaville"}, "Congo (Brazzaville)"},
	{"Costa Rica", "CR", "CRI", nil, ""},
	{"Croatia", "HR", "HRV", nil, ""},
	{"Cuba", "CU", "CUB", nil, ""},
	{"Curaçao", "CW", "CUW", []string{"Curacao"}, ""},
	{"Cyprus", "CY", "CYP", nil, ""},
	{"Czechia", "CZ", "CZE", []string{"Czech Republic"}, ""},
	{"Côte d'Ivoire", "CI", "CIV", []string{"Ivory Coast", "Cote d'Ivoire"}, "Cote d'Ivoire"},
	{"DRC", "CD", "COD", []string{"Democratic Republic of the Congo", "DR Congo", "Congo-Kinshasa"}, "Congo (Kinshasa)"},
	{"Denmark", "DK", "DNK", nil, ""},
	{"Djibouti", "DJ", "DJI", nil, ""},
	{"Dominica", "DM", "DMA", nil, ""},
	{"Dominican Republic", "DO", "DOM", nil, ""},
	{"Ecuador", "EC", "ECU", nil, ""},
	{"Egypt", "EG", "EGY", nil, ""},
	{"El Salvador", "SV", "SLV", nil, ""},
	{"Equatorial Guinea", "GQ", "GNQ", nil, ""},
	{"Eritrea", "ER", "ERI", nil, ""},
	{"Estonia", "EE", "EST", nil, ""},
	{"Ethiopia", "ET", "ETH", nil, ""},
	{"Falkland Islands (Malvinas)", "FK", "FLK", []string{"Falkland Islands", "Falklands"}, ""},
	{"Faroe Islands", "FO", "FRO", nil, ""},
	{"Fiji", "FJ", "FJI", nil, ""},
	{"Finland", "FI", "FIN", nil, ""},
	{"France", "FR", "FRA", nil, ""},
	{"French Guiana", "GF", "GUF", nil, ""},
	{"French Polynesia", "PF", "PYF", nil, ""},
	{"Gabon", "GA", "GAB", nil, ""},
	{"Gambia", "GM", "GMB", []string{"The Gambia"}, ""},
	{"Georgia", "GE", "GEO", nil, ""},
	{"Germany", "DE", "DEU", []string{"Deutschland"}, ""},
	{"Ghana", "GH", "GHA", nil, ""},
	{"Gibraltar", "GI", "GIB", nil, ""},
	{"Greece", "GR", "GRC", nil, ""},
	{"Greenland", "GL", "GRL", nil, ""},
	{"Grenada", "GD", "GRD", nil, ""},
	{"Guadeloupe", "GP", "GLP", nil, ""},
	{"Guatemala", "GT", "GTM", nil, ""},
	{"Guinea", "GN", "GIN", nil, ""},
	{"Guinea-Bissau", "GW", "GNB", []string{"Guinea Bissau"}, ""},
	{"Guyana", "GY", "GUY", nil, ""},
	{"Haiti", "HT", "HTI", nil, ""},
	{"Holy See (Vatican City State)", "VA", "VAT", []string{"Vatican", "Vatican City"}, "Holy See"},
	{"Honduras", "HN", "HND", nil, ""},
	{"Hong Kong", "HK", "HKG", []string{"Hong Kong SAR"}, ""},
	{"Hungary", "HU", "HUN", nil, ""},
	{"Iceland", "IS", "ISL", nil, ""},
	{"India", "IN", "IND", nil, ""},
	{"Indonesia", "ID", "IDN", nil, ""},
	{"Iran", "IR", "IRN", []string{"Islamic Republic of Iran"}, ""},
	{"Iraq", "IQ", "IRQ", nil, ""},
	{"Ireland", "IE", "IRL", []string{"Republic of Ireland"}, ""},
	{"Isle of Man", "IM", "IMN", nil, ""},
	{"Israel", "IL", "ISR", nil, ""},
	{"Italy", "IT", "ITA", []string{"Italia"}, ""},
	{"Jamaica", "JM", "JAM", nil, ""},
	{"Japan", "JP", "JPN", nil, ""},
	{"Jordan", "JO", "JOR", nil, ""},
	{"Kazakhstan", "KZ", "KAZ", nil, ""},
	{"Kenya", "KE", "KEN", nil, ""},
	{"Kiribati", "KI", "KIR", nil, ""},
	{"Kuwait", "KW", "KWT", nil, ""},
	{"Kyrgyzstan", "KG", "KGZ", nil, ""},
	{"Lao People's Democratic Republic", "LA", "LAO", []string{"Laos"}, "Laos"},
	{"Latvia", "LV", "LVA", nil, ""},
	{"Lebanon", "LB", "LBN", nil, ""},
	{"Lesotho", "LS", "LSO", nil, ""},
	{"Liberia", "LR", "LBR", nil, ""},
	{"Libyan Arab Jamahiriya", "LY", "LBY", []string{"Libya"}, "Libya"},
	{"Liechtenstein", "LI", "LIE", nil, ""},
	{"Lithuania", "LT", "LTU", nil, ""},
	{"Luxembourg", "LU", "LUX", nil, ""},
	{"Macao", "MO", "MAC", []string{"Macau"}, ""},
	{"Madagascar", "MG", "MDG", nil, ""},
	{"Malawi", "MW", "MWI", nil, ""},
	{"Malaysia", "MY", "MYS", nil, ""},
	{"Maldives", "MV", "MDV", nil, ""},
	{"Mali", "ML", "MLI", nil, ""},
	{"Malta", "MT", "MLT", nil, ""},
	{"Marshall Islands", "MH", "MHL", nil, ""},
	{"Martinique", "MQ", "MTQ", nil, ""},
	{"Mauritania", "MR", "MRT", nil, ""},
	{"Mauritius", "MU", "MUS", nil, ""},
	{"Mayotte", "YT", "MYT", nil, ""},
	{"Mexico", "MX", "MEX", nil, ""},
	{"Micronesia", "FM", "FSM", []string{"Federated States of Micronesia"}, ""},
	{"Moldova", "MD", "MDA", []string{"Republic of Moldova"}, ""},
	{"Monaco", "MC", "MCO", nil, ""},
	{"Mongolia", "MN", "MNG", nil, ""},
	{"Montenegro", "ME", "MNE", nil, ""},
	{"Montserrat", "MS", "MSR", nil, ""},
	{"Morocco", "MA", "MAR", nil, ""},
	{"Mozambique", "MZ", "MOZ", nil, ""},
	{"Myanmar", "MM", "MMR", []string{"Burma"}, "Burma"},
	{"N. Korea", "KP", "PRK", []string{"North Korea", "DPRK"}, "Korea, North"},
	{"Namibia", "NA", "NAM", nil, ""},
	{"Nauru", "NR", "NRU", nil, ""},
	{"Nepal", "NP", "NPL", nil, ""},
	{"Netherlands", "NL", "NLD", []string{"The Netherlands", "Holland"}, ""},
	{"New Caledonia", "NC", "NCL", nil, ""},
	{"New Zealand", "NZ", "NZL", nil, ""},
	{"Nicaragua", "NI", "NIC", nil, ""},
	{"Niger", "NE", "NER", nil, ""},
	{"Nigeria", "NG", "NGA", nil, ""},
	{"Niue", "NU", "NIU", nil, ""},
	{"North Macedonia", "MK", "MKD", []string{"Macedonia"}, ""},
	{"Norway", "NO", "NOR", nil, ""},
	{"Oman", "OM", "OMN", nil, ""},
	{"Pakistan", "PK", "PAK", nil, ""},
	{"Palau", "PW", "PLW", nil, ""},
	{"Palestine", "PS", "PSE", []string{"Palestinian Territories", "State of Palestine"}, "West Bank and Gaza"},
	{"Panama", "PA", "PAN", nil, ""},
	{"Papua New Guinea", "PG", "PNG", nil, ""},
	{"Paraguay", "PY", "PRY", nil, ""},
	{"Peru", "PE", "PER", nil, ""},
	{"Philippines", "PH", "PHL", nil, ""},
	{"Poland", "PL", "POL", nil, ""},
	{"Portugal", "PT", "PRT", nil, ""},
	{"Qatar", "QA", "QAT", nil, ""},
	{"Romania", "RO", "ROU", nil, ""},
	{"Russia", "RU", "RUS", []string{"Russian Federation"}, ""},
	{"Rwanda", "RW", "RWA", nil, ""},
	{"Réunion", "RE", "REU", []string{"Reunion"}, ""},
	{"S. Korea", "KR", "KOR", []string{"South Korea", "Korea", "Republic of Korea"}, "Korea, South"},
	{"Saint Helena", "SH", "SHN", nil, ""},
	{"Saint Kitts and Nevis", "KN", "KNA", []string{"St. Kitts and Nevis"}, ""},
	{"Saint Lucia", "LC", "LCA", []string{"St. Lucia"}, ""},
	{"Saint Martin", "MF", "MAF", []string{"St. Martin"}, ""},
	{"Saint Pierre Miquelon", "PM", "SPM", []string{"Saint Pierre and Miquelon"}, ""},
	{"Saint Vincent and the Grenadines", "VC", "VCT", []string{"St. Vincent and the Grenadines"}, ""},
	{"Samoa", "WS", "WSM", nil, ""},
	{"San Marino", "SM", "SMR", nil, ""},
	{"Sao Tome and Principe", "ST", "STP", []string{"São Tomé and Príncipe"}, ""},
	{"Saudi Arabia", "SA", "SAU", nil, ""},
	{"Senegal", "SN", "SEN", nil, ""},
	{"Serbia", "RS", "SRB", nil, ""},
	{"Seychelles", "SC", "SYC", nil, ""},
	{"Sierra Leone", "SL", "SLE", nil, ""},
	{"Singapore", "SG", "SGP", nil, ""},
	{"Sint Maarten", "SX", "SXM", nil, ""},
	{"Slovakia", "SK", "SVK", []string{"Slovak Republic"}, ""},
	{"Slovenia", "SI", "SVN", nil, ""},
	{"Solomon Islands", "SB", "SLB", nil, ""},
	{"Somalia", "SO", "SOM", nil, ""},
	{"South Africa", "ZA", "ZAF", []string{"RSA"}, ""},
	{"South Sudan", "SS", "SSD", nil, ""},
	{"Spain", "ES", "ESP", []string{"España"}, ""},
	{"Sri Lanka", "LK", "LKA", nil, ""},
	{"St. Barth", "BL", "BLM", []string{"Saint Barthelemy", "Saint Barthélemy"}, ""},
	{"Sudan", "SD", "SDN", nil, ""},
	{"Suriname", "SR", "SUR", nil, ""},
	{"Swaziland", "SZ", "SWZ", []string{"Eswatini"}, "Eswatini"},
	{"Sweden", "SE", "SWE", nil, ""},
	{"Switzerland", "CH", "CHE", nil, ""},
	{"Syrian Arab Republic", "SY", "SYR", []string{"Syria"}, "Syria"},
	{"Taiwan", "TW", "TWN", []string{"Republic of China"}, "Taiwan*"},
	{"Tajikistan", "TJ", "TJK", nil, ""},
	{"Tanzania", "TZ", "TZA", nil, ""},
	{"Thailand", "TH", "THA", nil, ""},
	{"Timor-Leste", "TL", "TLS", []string{"East Timor"}, ""},
	{"Togo", "TG", "TGO", nil, ""},
	{"Tonga", "TO", "TON", nil, ""},
	{"Trinidad and Tobago", "TT", "TTO", []string{"Trinidad"}, ""},
	{"Tunisia", "TN", "TUN", nil, ""},
	{"Turkey", "TR", "TUR", []string{"Türkiye", "Turkiye"}, ""},
	{"Turks and Caicos Islands", "TC", "TCA", nil, ""},
	{"Tuvalu", "TV", "TUV", nil, ""},
	{"UAE", "AE", "ARE", []string{"United Arab Emirates", "Emirates"}, "United Arab Emirates"},
	{"UK", "GB", "GBR", []string{"United Kingdom", "Great Britain", "Britain", "England"}, "United Kingdom"},
	{"USA", "US", "USA", []string{"United States", "United States of America", "America"}, "US"},
	{"Uganda", "UG", "UGA", nil, ""},
	{"Ukraine", "UA", "UKR", nil, ""},
	{"Uruguay", "UY", "URY", nil, ""},
	{"Uzbekistan", "UZ", "UZB", nil, ""},
	{"Vanuatu", "VU", "VUT", nil, ""},
	{"Venezuela", "VE", "VEN", nil, ""},
	{"Vietnam", "VN", "VNM", []string{"Viet Nam"}, ""},
	{"Wallis and Futuna", "WF", "WLF", nil, ""},
	{"Western Sahara", "EH", "ESH", nil, ""},
	{"Yemen", "YE", "YEM", nil, ""},
	{"Zambia", "ZM", "ZMB", nil, ""},
	{"Zimbabwe", "ZW", "ZWE", nil, ""},
}
