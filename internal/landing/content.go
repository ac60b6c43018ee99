// Package landing holds the marketing copy of the public site and renders it.
package landing

type Link struct {
	Label string
	Href  string
}

type Hero struct {
	Headline     string
	Highlight    string
	SubCopy      string
	CTA          string
	TrustLine    string
	VideoURL     string
	VideoThumb   string
	VideoCaption string
}

type Card struct {
	Title string
	Text  string
}

type Stat struct {
	Value string
	Label string
}

type Testimonial struct {
	Name  string
	Role  string
	Text  string
	Image string
}

type Contact struct {
	Phone   string
	Email   string
	Address string
}

type Page struct {
	Brand         string
	Nav           []Link
	Hero          Hero
	FeaturedTitle string
	FeaturedIn    []string
	ProblemTitle  string
	ProblemLead   string
	Problems      []Card
	Stats         []Stat
	ReviewsTitle  string
	Testimonials  []Testimonial
	ProcessTitle  string
	Process       []Card
	FooterTagline string
	QuickLinks    []Link
	Services      []string
	Contact       Contact
	ChatGreeting  string
	ChatReply     string
	PaymentNumber string
}

// DefaultPage is the copy the site ships with.
func DefaultPage() Page {
	return Page{
		Brand: "Corporate Ask",
		Nav: []Link{
			{"About", "#about"},
			{"Product & Service", "#services"},
			{"E-Books", "#ebooks"},
			{"Contact Us", "#contact"},
		},
		Hero: Hero{
			Headline:     "আপনার অভিজ্ঞতা আছে,",
			Highlight:    "কিন্তু সিভি কি কথা বলছে?",
			SubCopy:      "কর্পোরেট জগতের চাহিদা অনুযায়ী আপনার সিভিকে সাজিয়ে নিন। একটি পারফেক্ট সিভিই হতে পারে আপনার ড্রিম জবের চাবিকাঠি।",
			CTA:          "এখনই সার্ভিস বুক করুন",
			TrustLine:    "৭০,০০০+ প্রফেশনালদের বিশ্বস্ত চয়েস",
			VideoURL:     "https://www.youtube.com/watch?v=xqZP04y3mTU",
			VideoThumb:   "https://img.youtube.com/vi/xqZP04y3mTU/maxresdefault.jpg",
			VideoCaption: "Click to watch on YouTube",
		},
		FeaturedTitle: "As featured in",
		FeaturedIn:    []string{"News 24", "Somoy TV", "Prothom Alo", "Daily Star", "Bdjobs"},
		ProblemTitle:  "Resume Writing সার্ভিসটি কি আপনার জন্য?",
		ProblemLead:   "হ্যাঁ, যদি আপনি...",
		Problems: []Card{
			{
				Title: "বারবার অ্যাপ্লাই করছেন কিন্তু কল পাচ্ছেন না",
				Text:  "শত শত জায়গায় সিভি ড্রপ করার পরেও ইন্টারভিউ কল না পাওয়া মানে আপনার সিভিতে কিছু মিসিং আছে।",
			},
			{
				Title: "ক্যারিয়ার গ্যাপ বা ট্র্যাক চেঞ্জ",
				Text:  "পড়াশোনা বা চাকরির মাঝে বিরতি আছে অথবা ইন্ডাস্ট্রি পরিবর্তন করতে চাচ্ছেন কিন্তু সিভিতে সেটা ফুটিয়ে তুলতে পারছেন না।",
			},
			{
				Title: "লেভেল আপ করতে চান",
				Text:  "বর্তমান পজিশন থেকে প্রমোশন বা বেটার স্যালারির জবের জন্য নিজেকে যোগ্য প্রার্থী হিসেবে উপস্থাপন করতে চান।",
			},
		},
		Stats: []Stat{
			{"৭০,০০০+", "সিভি রিভিউ ও রাইটিং সম্পন্ন"},
			{"৯৮%", "ক্লায়েন্ট স্যাটিসফ্যাকশন"},
			{"৫০০০+", "সফল ক্যারিয়ার প্লেসমেন্ট"},
		},
		ReviewsTitle: "কর্পোরেট প্রফেশনালরা যা বলছেন",
		Testimonials: []Testimonial{
			{
				Name:  "Tanvir Ahmed",
				Role:  "Senior HR Manager at MNC",
				Image: "https://picsum.photos/id/1005/200/200",
				Text:  "Corporate Ask এর সার্ভিস নিয়ে আমি খুবই সন্তুষ্ট। তাদের রাইটাররা জানে ঠিক কি পয়েন্টগুলো হাইলাইট করলে রিক্রুটারদের নজর কাড়া যায়। আমার সিভিটা একদম প্রফেশনাল লুকে চেঞ্জ করে দিয়েছে!",
			},
			{
				Name:  "Farhana Islam",
				Role:  "Software Engineer",
				Image: "https://picsum.photos/id/1011/200/200",
				Text:  "আমার অনেক দিনের গ্যাপ ছিল জবে। ভাবছিলাম কিভাবে সেটা কভার করবো। Corporate Ask এর কনসালটেন্ট আমাকে দারুণ গাইডলাইন দিয়েছেন এবং সিভিতে গ্যাপটা পজিটিভলি উপস্থাপন করেছেন। এখন আমি নতুন জবে জয়েন করেছি!",
			},
			{
				Name:  "Rafiqul Islam",
				Role:  "Marketing Specialist",
				Image: "https://picsum.photos/id/1025/200/200",
				Text:  "সোজাসাপ্টা কথা - টাকা উসুল সার্ভিস। আমি ৩ মাস ধরে চেষ্টা করেও ইন্টারভিউ পাচ্ছিলাম না। এদের সার্ভিস নেয়ার ২ সপ্তাহের মধ্যে ৩টা ইন্টারভিউ কল পেয়েছি। Highly Recommended!",
			},
		},
		ProcessTitle: "সার্ভিসটি বুক করার পর আমরা যেভাবে কাজ করি",
		Process: []Card{
			{"বুকিং কনফার্মেশন", "পেমেন্ট সম্পন্ন করে আপনার বর্তমান সিভি এবং প্রয়োজনীয় তথ্য আমাদের সাথে শেয়ার করুন।"},
			{"১-অন-১ কনসালটেশন", "আমাদের এক্সপার্ট রাইটারের সাথে সরাসরি কথা বলে আপনার ক্যারিয়ার গোল এবং অভিজ্ঞতার বিস্তারিত জানান।"},
			{"এটিএস (ATS) ফ্রেন্ডলি", "মডার্ন রিক্রুটমেন্ট সফটওয়্যার (ATS) যেন আপনার সিভি রিজেক্ট না করে, সেভাবেই কি-ওয়ার্ড অপটিমাইজ করা হয়।"},
			{"ক্রাফটিং ও ডেলিভারি", "সব তথ্য বিশ্লেষণ করে একটি প্রফেশনাল, আকর্ষণীয় এবং ইন্টারভিউ-উইনিং সিভি তৈরি করে আপনাকে ডেলিভার করা হবে।"},
		},
		FooterTagline: "আমরা কাজ করি আপনার ক্যারিয়ার সল্যুশন নিয়ে। একটি সঠিক সিভি বদলে দিতে পারে আপনার আগামী দিনের পথচলা।",
		QuickLinks: []Link{
			{"Home", "#"},
			{"Services", "#services"},
			{"Success Stories", "#reviews"},
			{"Contact", "#contact"},
		},
		Services: []string{"Resume Writing", "Cover Letter Design", "LinkedIn Optimization", "Career Consultation"},
		Contact: Contact{
			Phone:   "+880 1XXX-XXXXXX",
			Email:   "support@corporateask.com",
			Address: "Banani, Dhaka-1213, Bangladesh",
		},
		ChatGreeting: "স্বাগতম Corporate Ask এ! কিভাবে আপনাকে সাহায্য করতে পারি?",
		ChatReply:    "ধন্যবাদ আপনার মেসেজের জন্য। আমাদের একজন প্রতিনিধি শীঘ্রই আপনার সাথে যোগাযোগ করবেন।",
	}
}
