package words

// englishStopWords is the curated filter set for the English path:
// ordinary stop words plus social-media noise and web fragments that
// would otherwise dominate any feed-derived word cloud. Built once at
// init and never mutated.
var englishStopWords = toSet([]string{
	// articles, conjunctions, prepositions
	"the", "and", "but", "for", "nor", "yet", "with", "from", "into",
	"onto", "over", "under", "about", "above", "after", "again", "against",
	"all", "among", "around", "because", "before", "behind", "below",
	"between", "beyond", "both", "during", "each", "either", "few",
	"further", "here", "how", "inside", "near", "once", "only", "other",
	"out", "outside", "own", "per", "since", "some", "such", "than",
	"that", "then", "there", "these", "this", "those", "through", "toward",
	"until", "upon", "via", "what", "when", "where", "which", "while",
	"who", "whom", "why", "within", "without",

	// pronouns and verb fillers
	"she", "her", "hers", "him", "his", "its", "our", "ours", "their",
	"theirs", "them", "they", "you", "your", "yours", "are", "was",
	"were", "been", "being", "have", "has", "had", "having", "does",
	"did", "doing", "will", "would", "shall", "should", "can", "could",
	"may", "might", "must", "ought", "not", "dont", "didnt", "doesnt",
	"isnt", "arent", "wasnt", "werent", "cant", "cannot", "couldnt",
	"shouldnt", "wouldnt", "wont", "aint", "lets", "thats", "whats",
	"whos", "youre", "youve", "youll", "youd", "ive", "ill", "hes",
	"shes", "weve", "theyre", "theyve", "itll", "itd", "gonna", "gotta",
	"wanna",

	// weak qualifiers
	"very", "too", "also", "just", "more", "most", "much", "many",
	"less", "least", "quite", "rather", "really", "still", "even",
	"ever", "never", "always", "often", "sometimes", "maybe", "perhaps",
	"probably", "actually", "basically", "literally", "definitely",
	"certainly", "anyway", "though", "although", "however", "instead",
	"otherwise", "nonetheless", "meanwhile", "already", "yeah", "yes",
	"nah", "okay", "sure", "well", "like", "get", "got", "getting",
	"goes", "going", "went", "gone", "make", "makes", "made", "making",
	"take", "takes", "took", "taken", "thing", "things", "stuff", "way",
	"ways", "lot", "lots", "bit", "kind", "sort", "type", "say", "says",
	"said", "saying", "see", "sees", "saw", "seen", "know", "knows",
	"knew", "known", "think", "thinks", "thought", "want", "wants",
	"wanted", "need", "needs", "needed", "use", "uses", "used", "using",
	"one", "two", "three", "first", "second", "new", "old", "good",
	"bad", "big", "small", "right", "wrong", "same", "different", "now",
	"today", "tomorrow", "yesterday", "time", "times", "day", "days",
	"week", "year", "people", "person", "someone", "anyone", "everyone",
	"nobody", "something", "anything", "everything", "nothing",
	"somewhere", "anywhere", "everywhere",

	// social media noise
	"lol", "lmao", "rofl", "omg", "wtf", "tbh", "imo", "imho", "smh",
	"fyi", "btw", "idk", "irl", "dms", "thread", "retweet", "repost",
	"follow", "following", "followers", "unfollow", "like", "likes",
	"liked", "share", "shared", "post", "posts", "posted", "posting",
	"reply", "replies", "tweet", "tweets", "skeet", "skeets", "haha",
	"hahaha", "hehe", "hmm", "hmmm", "huh", "wow", "yay", "nope", "yep",
	"yup", "pls", "plz", "thx", "thanks", "thank", "welcome", "hello",
	"hey", "bye", "goodbye", "morning", "night", "ngl", "fr", "rn",
	"asap", "aka", "etc",

	// web fragments
	"http", "https", "www", "com", "org", "net", "html", "href", "url",
	"link", "links", "click", "bsky", "social", "app", "dot", "amp",
	"gif", "jpg", "png",
})

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
