package language

var englishStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any", "are",
	"aren't", "as", "at", "be", "because", "been", "before", "being", "below", "between", "both",
	"but", "by", "can", "can't", "cannot", "could", "couldn't", "did", "didn't", "do", "does",
	"doesn't", "doing", "don't", "down", "during", "each", "few", "for", "from", "further", "had",
	"hadn't", "has", "hasn't", "have", "haven't", "having", "he", "he'd", "he'll", "he's", "her",
	"here", "here's", "hers", "herself", "him", "himself", "his", "how", "how's", "i", "i'd",
	"i'll", "i'm", "i've", "if", "in", "into", "is", "isn't", "it", "it's", "its", "itself",
	"let's", "me", "more", "most", "mustn't", "my", "myself", "no", "nor", "not", "of", "off",
	"on", "once", "only", "or", "other", "ought", "our", "ours", "ourselves", "out", "over", "own",
	"same", "shan't", "she", "she'd", "she'll", "she's", "should", "shouldn't", "so", "some",
	"such", "than", "that", "that's", "the", "their", "theirs", "them", "themselves", "then",
	"there", "there's", "these", "they", "they'd", "they'll", "they're", "they've", "this",
	"those", "through", "to", "too", "under", "until", "up", "very", "was", "wasn't", "we", "we'd",
	"we'll", "we're", "we've", "were", "weren't", "what", "what's", "when", "when's", "where",
	"where's", "which", "while", "who", "who's", "whom", "why", "why's", "will", "with", "won't",
	"would", "wouldn't", "you", "you'd", "you'll", "you're", "you've", "your", "yours",
	"yourself", "yourselves",
}

var frenchStopWords = []string{
	"au", "aux", "avec", "ce", "ces", "c'est", "dans", "de", "des", "du", "elle", "elles", "en",
	"et", "eux", "il", "ils", "je", "j'ai", "la", "le", "les", "leur", "leurs", "lui", "ma",
	"mais", "me", "même", "mes", "moi", "mon", "ne", "nos", "notre", "nous", "on", "ou", "où",
	"par", "pas", "pour", "qu", "que", "qui", "sa", "se", "ses", "son", "sur", "ta", "te", "tes",
	"toi", "ton", "tu", "un", "une", "vos", "votre", "vous", "c", "d", "j", "l", "à", "m", "n",
	"s", "t", "y", "été", "étée", "étées", "étés", "étant", "suis", "es", "est", "sommes", "êtes",
	"sont", "serai", "sera", "serons", "seront", "serais", "serait", "étais", "était", "étions",
	"étaient", "fus", "fut", "ai", "as", "avons", "avez", "ont", "aurai", "aura", "avais",
	"avait", "avions", "avaient", "eu", "eut", "ceci", "cela", "celà", "cet", "cette", "ici",
	"ils", "les", "leurs", "quel", "quels", "quelle", "quelles", "sans", "soi", "si", "très",
	"aussi", "comme", "donc", "lorsque", "puis", "quand", "alors",
}

var germanStopWords = []string{
	"aber", "alle", "allem", "allen", "aller", "alles", "als", "also", "am", "an", "ander",
	"andere", "anderem", "anderen", "anderer", "anderes", "auch", "auf", "aus", "bei", "bin",
	"bis", "bist", "da", "damit", "dann", "das", "dass", "daß", "dein", "deine", "dem", "den",
	"denn", "der", "des", "dich", "die", "dies", "diese", "diesem", "diesen", "dieser", "dieses",
	"dir", "doch", "dort", "du", "durch", "ein", "eine", "einem", "einen", "einer", "eines",
	"er", "es", "etwas", "euch", "euer", "für", "gegen", "hab", "habe", "haben", "hat", "hatte",
	"hatten", "hier", "hin", "hinter", "ich", "ihm", "ihn", "ihnen", "ihr", "ihre", "im", "in",
	"indem", "ins", "ist", "jede", "jedem", "jeden", "jeder", "jedes", "jetzt", "kann", "kein",
	"keine", "können", "man", "manche", "mein", "meine", "mich", "mir", "mit", "muss", "musste",
	"nach", "nicht", "nichts", "noch", "nun", "nur", "ob", "oder", "ohne", "sehr", "sein",
	"seine", "sich", "sie", "sind", "so", "solche", "soll", "sollte", "sondern", "um", "und",
	"uns", "unser", "unter", "viel", "vom", "von", "vor", "während", "war", "waren", "was",
	"weil", "welche", "wenn", "werde", "werden", "wie", "wieder", "will", "wir", "wird", "wo",
	"wollen", "zu", "zum", "zur", "zwar", "zwischen", "über",
}

var spanishStopWords = []string{
	"a", "al", "algo", "algunas", "algunos", "ante", "antes", "como", "con", "contra", "cual",
	"cuando", "de", "del", "desde", "donde", "durante", "e", "el", "él", "ella", "ellas", "ellos",
	"en", "entre", "era", "erais", "eran", "eras", "eres", "es", "esa", "esas", "ese", "eso",
	"esos", "esta", "está", "estaba", "estado", "están", "estar", "este", "esto", "estos", "fue",
	"fueron", "ha", "había", "han", "has", "hasta", "hay", "la", "las", "le", "les", "lo", "los",
	"más", "me", "mi", "mis", "mucho", "muy", "nada", "ni", "no", "nos", "nosotros", "o", "os",
	"otra", "otro", "para", "pero", "poco", "por", "porque", "que", "qué", "quien", "se", "sea",
	"ser", "si", "sí", "sin", "sobre", "son", "su", "sus", "también", "te", "tiene", "todo",
	"todos", "tu", "tus", "un", "una", "uno", "unos", "vosotros", "y", "ya", "yo",
}

var italianStopWords = []string{
	"a", "ad", "agli", "ai", "al", "alla", "alle", "allo", "anche", "avere", "che", "chi", "ci",
	"coi", "col", "come", "con", "contro", "cui", "da", "dagli", "dai", "dal", "dalla", "dalle",
	"dallo", "degli", "dei", "del", "della", "delle", "dello", "di", "dove", "e", "è", "ed",
	"era", "erano", "essere", "gli", "ha", "hanno", "ho", "i", "il", "in", "io", "la", "le",
	"lei", "li", "lo", "loro", "lui", "ma", "mi", "mia", "mio", "ne", "negli", "nei", "nel",
	"nella", "nelle", "nello", "noi", "non", "nostro", "o", "per", "perché", "più", "quale",
	"quando", "quella", "quello", "questa", "questo", "se", "si", "sia", "siamo", "sono", "su",
	"sua", "sue", "sugli", "sui", "sul", "sulla", "suo", "tra", "tu", "tutti", "tutto", "un",
	"una", "uno", "voi",
}

var portugueseStopWords = []string{
	"a", "ao", "aos", "as", "à", "às", "até", "com", "como", "da", "das", "de", "dela", "dele",
	"do", "dos", "e", "é", "ela", "elas", "ele", "eles", "em", "entre", "era", "essa", "esse",
	"esta", "está", "este", "eu", "foi", "há", "isso", "isto", "já", "lhe", "mais", "mas", "me",
	"mesmo", "meu", "minha", "muito", "na", "nas", "não", "nem", "no", "nos", "nós", "num",
	"numa", "o", "os", "ou", "para", "pela", "pelo", "por", "qual", "quando", "que", "quem",
	"se", "sem", "ser", "seu", "seus", "só", "sua", "suas", "também", "te", "tem", "um", "uma",
	"você", "vocês",
}

var dutchStopWords = []string{
	"aan", "al", "alles", "als", "altijd", "andere", "ben", "bij", "daar", "dan", "dat", "de",
	"der", "deze", "die", "dit", "doch", "doen", "door", "dus", "een", "eens", "en", "er", "ge",
	"geen", "geweest", "haar", "had", "heb", "hebben", "heeft", "hem", "het", "hier", "hij",
	"hoe", "hun", "iemand", "iets", "ik", "in", "is", "ja", "je", "kan", "kon", "kunnen", "maar",
	"me", "meer", "men", "met", "mij", "mijn", "moet", "na", "naar", "niet", "niets", "nog",
	"nu", "of", "om", "omdat", "onder", "ons", "ook", "op", "over", "reeds", "te", "tegen",
	"toch", "toen", "tot", "u", "uit", "uw", "van", "veel", "voor", "want", "waren", "was",
	"wat", "werd", "wezen", "wie", "wil", "worden", "wordt", "zal", "ze", "zelf", "zich", "zij",
	"zijn", "zo", "zonder", "zou",
}

var russianStopWords = []string{
	"а", "без", "более", "бы", "был", "была", "были", "было", "быть", "в", "вам", "вас", "весь",
	"во", "вот", "все", "всего", "всех", "вы", "где", "да", "даже", "для", "до", "его", "ее",
	"её", "если", "есть", "еще", "ещё", "же", "за", "здесь", "и", "из", "или", "им", "их", "к",
	"как", "когда", "кто", "ли", "либо", "мне", "может", "мы", "на", "надо", "наш", "не", "него",
	"нее", "нет", "ни", "них", "но", "ну", "о", "об", "однако", "он", "она", "они", "оно", "от",
	"очень", "по", "под", "при", "с", "со", "так", "также", "такой", "там", "те", "тем", "то",
	"того", "тоже", "той", "только", "том", "ты", "у", "уже", "хотя", "чего", "чей", "чем",
	"что", "чтобы", "чье", "эта", "эти", "это", "я",
}
