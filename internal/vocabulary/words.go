package vocabulary

import "yardwords/internal/domain"

// yardWords is the built-in list: things you find in a yard or on the street
var yardWords = []domain.Entry{
	{Word: "fence", Phonetic: "/fens/", Translation: "забор"},
	{Word: "gate", Phonetic: "/ɡeɪt/", Translation: "калитка, ворота"},
	{Word: "bench", Phonetic: "/bentʃ/", Translation: "скамейка"},
	{Word: "swing", Phonetic: "/swɪŋ/", Translation: "качели"},
	{Word: "lawn", Phonetic: "/lɔːn/", Translation: "газон"},
	{Word: "bush", Phonetic: "/bʊʃ/", Translation: "куст"},
	{Word: "tree", Phonetic: "/triː/", Translation: "дерево"},
	{Word: "flower", Phonetic: "/ˈflaʊ.ər/", Translation: "цветок"},
	{Word: "fountain", Phonetic: "/ˈfaʊn.tɪn/", Translation: "фонтан"},
	{Word: "gazebo", Phonetic: "/ɡəˈziː.boʊ/", Translation: "беседка"},
	{Word: "grill", Phonetic: "/ɡrɪl/", Translation: "гриль"},
	{Word: "barbecue", Phonetic: "/ˈbɑːr.bə.kjuː/", Translation: "мангал, барбекю"},
	{Word: "shed", Phonetic: "/ʃed/", Translation: "сарай"},
	{Word: "garage", Phonetic: "/ɡəˈrɑːʒ/", Translation: "гараж"},
	{Word: "path", Phonetic: "/pæθ/", Translation: "дорожка, тропинка"},
	{Word: "lantern", Phonetic: "/ˈlæn.tɚn/", Translation: "фонарь"},
	{Word: "mailbox", Phonetic: "/ˈmeɪl.bɑːks/", Translation: "почтовый ящик"},
	{Word: "trash can", Phonetic: "/ˈtræʃ ˌkæn/", Translation: "мусорный бак"},
	{Word: "hose", Phonetic: "/hoʊz/", Translation: "шланг"},
	{Word: "watering can", Phonetic: "/ˈwɔː.t̬ɚ.ɪŋ ˌkæn/", Translation: "лейка"},
	{Word: "rake", Phonetic: "/reɪk/", Translation: "грабли"},
	{Word: "shovel", Phonetic: "/ˈʃʌv.əl/", Translation: "лопата"},
	{Word: "wheelbarrow", Phonetic: "/ˈwiːlˌbær.oʊ/", Translation: "тачка"},
	{Word: "pool", Phonetic: "/puːl/", Translation: "бассейн"},
	{Word: "playground", Phonetic: "/ˈpleɪ.ɡraʊnd/", Translation: "детская площадка"},
	{Word: "slide", Phonetic: "/slaɪd/", Translation: "горка"},
	{Word: "sandbox", Phonetic: "/ˈsænd.bɑːks/", Translation: "песочница"},
	{Word: "bird", Phonetic: "/bɜːrd/", Translation: "птица"},
	{Word: "bird feeder", Phonetic: "/ˈbɜːrd ˌfiː.dər/", Translation: "кормушка"},
	{Word: "birdhouse", Phonetic: "/ˈbɜːrd.haʊs/", Translation: "скворечник"},
	{Word: "lawn mower", Phonetic: "/ˈlɔːn ˌmoʊ.ər/", Translation: "газонокосилка"},
	{Word: "porch", Phonetic: "/pɔːrtʃ/", Translation: "крыльцо, веранда"},
	{Word: "patio", Phonetic: "/ˈpæt.i.oʊ/", Translation: "патио, внутренний дворик"},
}
