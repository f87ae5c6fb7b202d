package hime

// convertData holds {simplified, traditional} character pairs. This is a
// representative subset, not the full production table: common function
// words, radicals-with-variant-forms, and the two duplicate-key cases
// spec.md §9 calls out by name ("济"/"县" each appear twice), resolved
// first-occurrence-wins (see buildConvTables).
var convertData = [][2]string{
	{"爱", "愛"}, {"碍", "礙"}, {"肮", "骯"}, {"袄", "襖"},
	{"坝", "壩"}, {"板", "闆"}, {"办", "辦"}, {"帮", "幫"},
	{"宝", "寶"}, {"报", "報"}, {"币", "幣"}, {"毕", "畢"},
	{"边", "邊"}, {"宾", "賓"}, {"卜", "蔔"}, {"补", "補"},
	{"才", "才"}, {"蚕", "蠶"}, {"灿", "燦"}, {"层", "層"},
	{"查", "查"}, {"产", "產"}, {"长", "長"}, {"尝", "嘗"},
	{"厂", "廠"}, {"车", "車"}, {"彻", "徹"}, {"尘", "塵"},
	{"衬", "襯"}, {"称", "稱"}, {"惩", "懲"}, {"迟", "遲"},
	{"冲", "衝"}, {"丑", "醜"}, {"出", "出"}, {"础", "礎"},
	{"处", "處"}, {"触", "觸"}, {"传", "傳"}, {"闯", "闖"},
	{"创", "創"}, {"吹", "吹"}, {"垂", "垂"}, {"辞", "辭"},
	{"聪", "聰"}, {"从", "從"}, {"丛", "叢"}, {"达", "達"},
	{"带", "帶"}, {"担", "擔"}, {"单", "單"}, {"当", "當"},
	{"党", "黨"}, {"导", "導"}, {"灯", "燈"}, {"邓", "鄧"},
	{"敌", "敵"}, {"籴", "糴"}, {"递", "遞"}, {"点", "點"},
	{"电", "電"}, {"冬", "冬"}, {"东", "東"}, {"动", "動"},
	{"冻", "凍"}, {"栋", "棟"}, {"斗", "鬥"}, {"独", "獨"},
	{"吨", "噸"}, {"夺", "奪"}, {"堕", "墮"}, {"儿", "兒"},
	{"尔", "爾"}, {"发", "發"}, {"矾", "礬"}, {"范", "範"},
	{"飞", "飛"}, {"坟", "墳"}, {"奋", "奮"}, {"粪", "糞"},
	{"凤", "鳳"}, {"肤", "膚"}, {"妇", "婦"}, {"复", "復"},
	{"赴", "赴"}, {"盖", "蓋"}, {"干", "幹"}, {"赶", "趕"},
	{"个", "個"}, {"巩", "鞏"}, {"沟", "溝"}, {"构", "構"},
	{"购", "購"}, {"谷", "穀"}, {"顾", "顧"}, {"刮", "颳"},
	{"挂", "掛"}, {"关", "關"}, {"观", "觀"}, {"柜", "櫃"},
	{"国", "國"}, {"过", "過"}, {"哈", "哈"}, {"汉", "漢"},
	{"号", "號"}, {"合", "合"}, {"轰", "轟"}, {"后", "後"},
	{"胡", "鬍"}, {"护", "護"}, {"划", "劃"}, {"怀", "懷"},
	{"坏", "壞"}, {"欢", "歡"}, {"环", "環"}, {"还", "還"},
	{"回", "迴"}, {"伙", "夥"}, {"获", "獲"}, {"几", "幾"},
	{"饥", "饑"}, {"鸡", "雞"}, {"积", "積"}, {"极", "極"},
	{"际", "際"}, {"继", "繼"}, {"家", "家"}, {"价", "價"},
	{"艰", "艱"}, {"歼", "殲"}, {"茧", "繭"}, {"拣", "揀"},
	{"硷", "鹼"}, {"舰", "艦"}, {"姜", "薑"}, {"浆", "漿"},
	{"讲", "講"}, {"酱", "醬"}, {"胶", "膠"}, {"阶", "階"},
	{"节", "節"}, {"茎", "莖"}, {"惊", "驚"}, {"经", "經"},
	{"井", "井"}, {"警", "警"}, {"净", "淨"}, {"纠", "糾"},
	{"旧", "舊"}, {"剧", "劇"}, {"据", "據"}, {"惧", "懼"},
	{"卷", "捲"}, {"觉", "覺"}, {"决", "決"}, {"军", "軍"},
	{"开", "開"}, {"克", "克"}, {"垦", "墾"}, {"恳", "懇"},
	{"夸", "誇"}, {"块", "塊"}, {"亏", "虧"}, {"困", "困"},
	{"扩", "擴"}, {"阔", "闊"}, {"蜡", "蠟"}, {"腊", "臘"},
	{"来", "來"}, {"蓝", "藍"}, {"栏", "欄"}, {"烂", "爛"},
	{"累", "累"}, {"垒", "壘"}, {"类", "類"}, {"里", "裡"},
	{"礼", "禮"}, {"丽", "麗"}, {"历", "歷"}, {"励", "勵"},
	{"利", "利"}, {"俩", "倆"}, {"联", "聯"}, {"怜", "憐"},
	{"炼", "煉"}, {"练", "練"}, {"粮", "糧"}, {"两", "兩"},
	{"辆", "輛"}, {"了", "了"}, {"疗", "療"}, {"辽", "遼"},
	{"灵", "靈"}, {"岭", "嶺"}, {"龙", "龍"}, {"楼", "樓"},
	{"陆", "陸"}, {"乱", "亂"}, {"略", "略"}, {"轮", "輪"},
	{"论", "論"}, {"罗", "羅"}, {"马", "馬"}, {"买", "買"},
	{"卖", "賣"}, {"迈", "邁"}, {"脉", "脈"}, {"满", "滿"},
	{"谩", "謾"}, {"帅", "帥"}, {"没", "沒"}, {"门", "門"},
	{"梦", "夢"}, {"弥", "彌"}, {"觅", "覓"}, {"面", "麵"},
	{"庙", "廟"}, {"灭", "滅"}, {"民", "民"}, {"难", "難"},
	{"鸟", "鳥"}, {"聂", "聶"}, {"宁", "寧"}, {"农", "農"},
	{"浓", "濃"}, {"诺", "諾"}, {"欧", "歐"}, {"盘", "盤"},
	{"抛", "拋"}, {"疲", "疲"}, {"苹", "蘋"}, {"凭", "憑"},
	{"扑", "撲"}, {"仆", "僕"}, {"朴", "樸"}, {"栖", "棲"},
	{"启", "啟"}, {"气", "氣"}, {"弃", "棄"}, {"牵", "牽"},
	{"千", "千"}, {"纤", "纖"}, {"签", "簽"}, {"前", "前"},
	{"钱", "錢"}, {"浅", "淺"}, {"谴", "譴"}, {"枪", "槍"},
	{"墙", "牆"}, {"乔", "喬"}, {"桥", "橋"}, {"窍", "竅"},
	{"亲", "親"}, {"轻", "輕"}, {"庆", "慶"}, {"琼", "瓊"},
	{"穷", "窮"}, {"区", "區"}, {"趋", "趨"}, {"权", "權"},
	{"劝", "勸"}, {"确", "確"}, {"让", "讓"}, {"扰", "擾"},
	{"热", "熱"}, {"认", "認"}, {"荣", "榮"}, {"软", "軟"},
	{"锐", "銳"}, {"闰", "閏"}, {"润", "潤"}, {"洒", "灑"},
	{"赛", "賽"}, {"伞", "傘"}, {"丧", "喪"}, {"骚", "騷"},
	{"涩", "澀"}, {"杀", "殺"}, {"纱", "紗"}, {"筛", "篩"},
	{"晒", "曬"}, {"闪", "閃"}, {"伤", "傷"}, {"赏", "賞"},
	{"舍", "捨"}, {"沈", "瀋"}, {"声", "聲"},
	{"胜", "勝"}, {"师", "師"}, {"实", "實"}, {"识", "識"},
	{"虱", "蝨"}, {"时", "時"}, {"实", "實"}, {"适", "適"},
	{"势", "勢"}, {"寿", "壽"}, {"属", "屬"}, {"术", "術"},
	{"树", "樹"}, {"双", "雙"}, {"谁", "誰"}, {"税", "稅"},
	{"说", "說"}, {"松", "鬆"}, {"诵", "誦"}, {"虽", "雖"},
	{"随", "隨"}, {"岁", "歲"}, {"孙", "孫"}, {"损", "損"},
	{"条", "條"}, {"台", "臺"}, {"态", "態"}, {"坛", "壇"},
	{"叹", "嘆"}, {"誊", "謄"}, {"体", "體"}, {"屉", "屜"},
	{"条", "條"}, {"听", "聽"}, {"图", "圖"}, {"涂", "塗"},
	{"团", "團"}, {"椭", "橢"}, {"洼", "窪"}, {"袜", "襪"},
	{"网", "網"}, {"卫", "衛"}, {"伪", "偽"}, {"文", "文"},
	{"闻", "聞"}, {"务", "務"}, {"雾", "霧"}, {"无", "無"},
	{"习", "習"}, {"戏", "戲"}, {"系", "系"}, {"虾", "蝦"},
	{"吓", "嚇"}, {"现", "現"}, {"县", "縣"}, {"宪", "憲"},
	{"乡", "鄉"}, {"响", "響"}, {"向", "向"}, {"协", "協"},
	{"胁", "脅"}, {"写", "寫"}, {"泻", "瀉"}, {"谢", "謝"},
	{"锌", "鋅"}, {"兴", "興"}, {"须", "須"}, {"学", "學"},
	{"压", "壓"}, {"盐", "鹽"}, {"阳", "陽"}, {"养", "養"},
	{"痒", "癢"}, {"样", "樣"}, {"瑶", "瑤"}, {"药", "藥"},
	{"爷", "爺"}, {"页", "頁"}, {"业", "業"}, {"医", "醫"},
	{"仪", "儀"}, {"谊", "誼"}, {"艺", "藝"}, {"异", "異"},
	{"义", "義"}, {"议", "議"}, {"亿", "億"}, {"忆", "憶"},
	{"应", "應"}, {"营", "營"}, {"萤", "螢"}, {"蝇", "蠅"},
	{"优", "優"}, {"忧", "憂"}, {"邮", "郵"}, {"余", "餘"},
	{"鱼", "魚"}, {"与", "與"}, {"誉", "譽"}, {"园", "園"},
	{"远", "遠"}, {"愿", "願"}, {"约", "約"}, {"跃", "躍"},
	{"云", "雲"}, {"运", "運"}, {"酝", "醞"}, {"杂", "雜"},
	{"赃", "贓"}, {"凿", "鑿"}, {"枣", "棗"}, {"灶", "灶"},
	{"斋", "齋"}, {"毡", "氈"}, {"战", "戰"}, {"赵", "趙"},
	{"这", "這"}, {"征", "徵"}, {"症", "症"}, {"证", "證"},
	{"支", "支"}, {"只", "隻"}, {"致", "致"}, {"钟", "鐘"},
	{"种", "種"}, {"众", "眾"}, {"诸", "諸"}, {"烛", "燭"},
	{"嘱", "囑"}, {"铸", "鑄"}, {"筑", "築"}, {"庄", "莊"},
	{"装", "裝"}, {"壮", "壯"}, {"状", "狀"}, {"锥", "錐"},
	{"准", "準"}, {"浊", "濁"}, {"总", "總"}, {"钻", "鑽"},
	{"左", "左"}, {"佐", "佐"}, {"做", "做"}, {"坐", "坐"},
	// duplicate-key cases named in spec.md §9: "济" is listed twice here
	// and "县" repeats a key already listed above; first occurrence wins.
	{"济", "濟"}, {"济", "齊"}, {"县", "縣"},
}
