package catalog

import "unicode/utf8"

// Feature is a short highlight card on the home and about pages.
type Feature struct {
	Title       string
	Description string
}

// Testimonial is a client review shown on the home page.
type Testimonial struct {
	Name   string
	Text   string
	Rating int
}

// ReadMoreLimit is the number of characters shown before a review is collapsed.
const ReadMoreLimit = 300

// Excerpt returns the collapsed form of the review and whether it was cut.
func (t Testimonial) Excerpt(limit int) (string, bool) {
	if utf8.RuneCountInString(t.Text) <= limit {
		return t.Text, false
	}
	runes := []rune(t.Text)
	return string(runes[:limit]) + "...", true
}

// Offer is a standing or seasonal special.
type Offer struct {
	Title       string
	Price       string
	Description string
}

// OpeningHours is one line of the business hours block.
type OpeningHours struct {
	Days  string
	Hours string
}

// Clinic holds the contact block shown in the footer.
type Clinic struct {
	Name      string
	Area      string
	City      string
	Phone     string
	Email     string
	Instagram string
	Hours     []OpeningHours
}

// ProductCategory is a Circadia product family with its demo videos.
type ProductCategory struct {
	Title  string
	Blurb  string
	Image  string
	Alt    string
	Videos []Media
}

// ProductsContent is everything the products page renders.
type ProductsContent struct {
	Pillars         []string
	Categories      []ProductCategory
	AmbientStrip    []Media
	Transformations []Media
	// AutoplayMillis is the transformation carousel's advance interval; zero disables it.
	AutoplayMillis int
}

// ClinicInfo returns the clinic's contact details.
func ClinicInfo() Clinic {
	return Clinic{
		Name:      "Lalalu Skin & Laser",
		Area:      "Nolan Hill, NW",
		City:      "Calgary, Alberta",
		Phone:     "(403) 607-1443",
		Email:     "info@lalaluskinlaser.com",
		Instagram: "https://www.instagram.com/lalaluskinlaser/",
		Hours: []OpeningHours{
			{Days: "Monday - Friday", Hours: "11:00 AM - 7:00 PM"},
			{Days: "Saturday - Sunday", Hours: "12:00 PM - 5:00 PM"},
		},
	}
}

// HomeFeatures returns the highlight cards of the home page.
func HomeFeatures() []Feature {
	return []Feature{
		{Title: "Premium Treatments", Description: "State-of-the-art equipment and professional-grade products for optimal results."},
		{Title: "Flexible Hours", Description: "Open Monday to Friday from 11AM – 7PM and weekends from 12PM – 5PM to fit your schedule."},
		{Title: "All Ages Welcome", Description: "Treatments suitable for teenagers to mature adults, customized for your needs."},
		{Title: "Expert Care", Description: "Professional aestheticians dedicated to helping you achieve your skin goals."},
	}
}

// AboutValues returns the value cards of the about page.
func AboutValues() []Feature {
	return []Feature{
		{Title: "Personalized Care", Description: "Every treatment is thoughtfully tailored to your unique skin goals and concerns."},
		{Title: "Inclusive Approach", Description: "All ages and skin types are welcome. Everyone deserves to feel confident in their skin."},
		{Title: "Professional Standards", Description: "Only trusted techniques and high-quality products are used to ensure great results."},
		{Title: "Convenient Hours", Description: "Open Monday to Friday from 11AM – 7PM and weekends from 12PM – 5PM to fit treatments into your schedule."},
	}
}

// Testimonials returns the reviews shown on the home page.
func Testimonials() []Testimonial {
	return []Testimonial{
		{
			Name:   "Renata J.",
			Text:   "I had a wonderful experience at Lalalu Skin & Laser for my Morpheus8 RF Microneedling treatment. Asia was extremely knowledgeable and made me feel comfortable throughout the entire appointment. She explained every step clearly and even offered helpful advice for my hair concerns. I really appreciated the extra massage she provided, such a thoughtful touch that made the experience even better. The salon is beautiful and clean, and I loved that there was easy, convenient parking available, which made the visit stress-free. I will definitely be coming back, and I highly recommend Asia to my friends!",
			Rating: 5,
		},
		{
			Name:   "Mariya Z.",
			Text:   "I had an absolutely exceptional HydraFacial experience! From start to finish, the expert was not only incredibly skilled but also took the time to explain each step of the process in detail. Every product used was introduced with a clear explanation of its purpose and benefits, which made me feel both informed and confident in the treatment. What really stood out was the depth of knowledge shared about skin health — I learned so much about my own skin type, common issues, and practical ways to improve it. Highly recommend if youre looking for results, professionalism, and a truly knowledgeable skincare expert. Will definitely be returning!",
			Rating: 5,
		},
		{
			Name:   "Verified Client.",
			Text:   "Hats off to the details on the body and face slimming treatment by Asia! She is so kind and gentle, plus explains every procedure along the journey! I have had 7 sessions for my stomach and 2 for face slimming. She has the best discounts on body contouring. I have lost almost 4 kgs since we started the treatment and 3 inches of my hanging belly! Overall very happy customer and will try to get my love handles slimming treatment done next.",
			Rating: 5,
		},
	}
}

// StandingOffers returns the specials shown in the footer.
func StandingOffers() []Offer {
	return []Offer{
		{Title: "BOGO 20% Off", Description: "Buy one service, get the second 20% off"},
		{Title: "B2GO 50% Off", Description: "Buy two services, get the third 50% off"},
		{Title: "B3GO Free", Description: "Buy three services, get the fourth one free"},
		{Title: "Free Add-On", Description: "Add Dermaplaning or Cupping to any facial"},
	}
}

// Products returns the products page content.
func Products() ProductsContent {
	return ProductsContent{
		Pillars: []string{
			"Science-backed formulations",
			"Barrier-friendly, gentle actives",
			"Professional-only protocols",
			"Visible, lasting results",
		},
		Categories: []ProductCategory{
			{
				Title:  "Cleansers",
				Blurb:  "pH-balanced, gentle, effective",
				Image:  "/Circadia/cleanser.png",
				Alt:    "Circadia professional facial cleansers used in clinical skincare treatments",
				Videos: Videos("/Circadia/Cleansing-Mandelic.mp4", "/Circadia/Vitamin-Veil-Cleanser-Kris-Reel.mp4", "/Circadia/VV1.mp4"),
			},
			{
				Title:  "Serums",
				Blurb:  "Targeted actives for visible change",
				Image:  "/Circadia/Serum.jpg",
				Alt:    "Circadia treatment serums applied to the skin for targeted results",
				Videos: Videos("/Circadia/VitaminC-Serum.mp4", "/Circadia/Serum-71-2.mp4"),
			},
			{
				Title:  "Moisturizers + SPF",
				Blurb:  "Barrier support & daily defense",
				Image:  "/Circadia/CircaShieldWater2.jpg",
				Alt:    "Circadia moisturizer and SPF products supporting the skin barrier",
				Videos: Videos("/Circadia/AquaporinWater.mov"),
			},
			{
				Title:  "Enzymes",
				Blurb:  "Gentle exfoliation for instant glow",
				Image:  "/Circadia/Cocoa-Enzyme.jpg",
				Alt:    "Circadia cocoa enzyme exfoliation treatment applied during a facial",
				Videos: Videos("/Circadia/Cocoa-Enzyme-Sound.mp4"),
			},
		},
		AmbientStrip: Images(
			"/Circadia/CharcoalApply_12.png",
			"/Circadia/products-1.jpg",
			"/Circadia/products-3.jpg",
			"/Circadia/PreProFacial10.jpg",
			"/Circadia/Aquabiotic-2.jpg",
			"/Circadia/cocoa.jpg",
		),
		Transformations: []Media{
			ImageItem("/Circadia/Transformations/acne.png", "", "Acne — 10 weeks"),
			ImageItem("/Circadia/Transformations/aging.png", "", "Aging — 10 weeks"),
			ImageItem("/Circadia/Transformations/hyperpigmentation.png", "", "Hyperpigmentation — 10 weeks"),
			ImageItem("/Circadia/Transformations/modality.png", "", "Texture refinement"),
			ImageItem("/Circadia/Transformations/modality - 2.png", "", "Texture refinement"),
			ImageItem("/Circadia/Transformations/sensitive.png", "", "Sensitive skin support"),
			ImageItem("/Circadia/Transformations/transformations.png", "", "Real Results"),
		},
	}
}
