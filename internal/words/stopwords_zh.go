package words

// chineseStopWords filters particles, discourse markers, temporal and
// modal words, and social-media filler from the Chinese path. Applied
// after segmentation regardless of which segmenter produced the tokens.
var chineseStopWords = toSet([]string{
	// particles and function words
	"的", "了", "在", "是", "我", "有", "和", "就", "不", "人", "都",
	"一", "上", "也", "很", "到", "说", "要", "去", "你", "会", "着",
	"没", "看", "好", "这", "那", "他", "她", "它", "们", "个", "中",
	"与", "为", "以", "于", "之", "而", "或", "及", "把", "被", "给",
	"让", "向", "从", "对", "跟", "啊", "吧", "吗", "呢", "呀", "哦",
	"嗯", "哎", "唉", "喔", "嘛", "哇", "咦", "诶", "噢", "嘿",

	// common two-character function words
	"我们", "你们", "他们", "她们", "它们", "这个", "那个", "这些",
	"那些", "这样", "那样", "这里", "那里", "什么", "怎么", "为什么",
	"怎样", "如何", "哪里", "哪个", "多少", "因为", "所以", "但是",
	"可是", "不过", "然后", "然而", "而且", "并且", "或者", "还是",
	"如果", "虽然", "即使", "无论", "只要", "只有", "除了", "关于",
	"对于", "由于", "通过", "根据", "按照", "作为", "成为", "觉得",
	"感觉", "知道", "认为", "希望", "需要", "应该", "可以", "可能",
	"能够", "必须", "不能", "没有", "不是", "就是", "还有", "已经",
	"正在", "曾经", "总是", "经常", "有时", "偶尔", "马上", "立刻",
	"刚刚", "突然", "终于", "果然", "居然", "竟然", "当然", "其实",
	"确实", "真的", "非常", "特别", "比较", "有点", "一点", "一些",
	"一下", "一直", "一起", "一样", "大家", "自己", "别人", "时候",
	"现在", "今天", "明天", "昨天", "以前", "以后", "最近", "最后",
	"开始", "结束", "事情", "东西", "地方", "问题", "意思", "出来",
	"起来", "下来", "过去", "回来", "上去", "进去", "出去", "不要",
	"不会", "不用", "不行", "不好", "不同", "各种", "很多", "许多",
	"所有", "每个", "整个", "全部",

	// social-media filler
	"哈哈", "哈哈哈", "哈哈哈哈", "嘿嘿", "呵呵", "嘻嘻", "哇塞",
	"天哪", "我的天", "卧槽", "草", "笑死", "无语", "啊啊啊", "呜呜",
	"呜呜呜", "嗯嗯", "好的", "好吧", "好了", "对对", "对啊", "是啊",
	"是的", "真是", "就很", "那么", "这么", "多么",
})

// meaningfulSingleChars is the short allow-list of single characters that
// may stand alone in a word cloud. Any other single character is dropped
// no matter how often it appears.
var meaningfulSingleChars = toSet([]string{
	"爱", "家", "梦", "心", "光", "夜", "雨", "雪", "山", "海", "花",
	"月", "风", "茶", "酒", "书", "猫", "狗", "美", "乐", "诗", "歌",
	"画", "火", "水", "星", "云", "春", "夏", "秋", "冬",
})
