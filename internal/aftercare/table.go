package aftercare

var entries = map[string]Entry{
	"microneedling": List(
		"Expect mild redness & swelling for 1-3 days, possibly light flaking.",
		"Avoid direct sun exposure & heat (saunas, workouts) for at least 48-72 hours.",
		"Do not apply makeup for 24–48 hours.",
		"Use a gentle, hydrating cleanser & moisturizer; avoid actives such as retinol, glycolic, and salicylic acid for at least 7 days before and after the appointment.",
		"Apply SPF 50 daily and avoid direct sun exposure — your skin is extra sensitive to the sun.",
		"Do not pick or peel flaking skin.",
		"Complete healing generally takes 2-3 weeks.",
	),
	"microdermabrasion": List(
		"Expect slight pinkness; will subside in a few hours.",
		"Avoid makeup for 12-24 hours.",
		"No exfoliation or strong actives for 5-7 days.",
		"Keep skin well-hydrated & use sunscreen daily.",
		"Avoid swimming pools or hot tubs for 48 hours.",
	),
	"hydrafacial": List(
		"Avoid makeup for 12-24 hours.",
		"No exfoliating products (AHAs/BHAs) for 48 hours.",
		"Drink plenty of water to boost results.",
		"Apply SPF 30+ daily to protect that new glow.",
		"Avoid vigorous workouts, saunas, or steam for 24 hours.",
	),
	"bb-glow": List(
		"No makeup or face washing for 24 hours.",
		"Avoid heavy sweating, saunas, and sun exposure for 48 hours.",
		"Use only gentle, hydrating skincare for 5-7 days.",
		"Minor dryness & flaking is normal — do not pick or scrub.",
		"Always wear SPF 50 daily to maintain your even glow.",
	),
	"chemical-peels": Sectioned(Sections{
		General: []string{
			"Mild redness, tightness, and peeling or flaking may occur over 3–7 days, depending on the peel strength.",
			"Do not pick, peel, or scrub flaking skin — allow it to shed naturally.",
			"Avoid makeup for 24–48 hours until the skin calms.",
			"Keep the skin well-hydrated with a gentle moisturizer 2–3 times daily.",
			"Use a gentle, non-active cleanser for 7-10 days.",
			"Avoid exfoliants, retinol, AHAs/BHAs, scrubs, or strong actives for 7-10 days, or until the skin has fully healed.",
		},
		Sun: []string{
			"Apply SPF 50 every morning — this is mandatory after chemical peels.",
			"Avoid direct sun exposure for at least 1 week.",
			"Reapply sunscreen every 2–3 hours if outdoors.",
		},
		Activities: []string{
			"Avoid sweating, strenuous exercise, saunas, and steam rooms for at least 48 hours.",
			"Avoid swimming pools or hot tubs for at least 48 hours to prevent irritation and bacteria exposure.",
			"Do not wax, thread, or shave the area for at least 7-14 days.",
			"Avoid hot showers touching the treated area for at least 24-72 hours, and potentially up to a week. Use lukewarm water.",
		},
		WhenToSeekHelp: []string{
			"Contact us if you experience excessive redness, significant swelling, unusual discomfort, or signs of a reaction.",
			"Very light peeling is normal — but blistering is not. Reach out immediately if this occurs.",
		},
	}),
	"diamond-glow": List(
		"Mild redness, tightness, or warmth may occur and typically resolves within a few hours.",
		"Avoid makeup for 24 hours to allow the skin to fully recover.",
		"Do not exfoliate or use active ingredients (retinol, AHAs, BHAs, benzoyl peroxide) for at least 48h - 1 week.",
		"Use a gentle cleanser and hydrating moisturizer only for the first few days.",
		"Avoid heat exposure such as saunas, steam rooms, hot yoga, or intense workouts for 24–48 hours.",
		"Apply broad-spectrum SPF 30–50 daily, as freshly exfoliated skin is more sun-sensitive.",
		"Avoid direct sun exposure and tanning beds for at least 48 hours.",
		"Keep skin well hydrated and drink plenty of water to support healing and glow.",
	),
	"dermaplaning": List(
		"Your skin may feel extra smooth & sensitive.",
		"Avoid exfoliants & active ingredients (retinol, acids) for 3-5 days.",
		"Wear SPF daily as skin is more prone to UV damage.",
		"Avoid makeup for 12-24 hours to prevent clogging.",
		"Avoid waxing/threading for 7 days",
	),
	"skin-brightening": List(
		"Avoid heavy makeup for 12 hours to let your skin breathe.",
		"Avoid hot showers, saunas, or steam rooms for 24 hours.",
		"Use gentle cleansers and moisturizers.",
		"Always apply broad-spectrum SPF 30+ daily, even on cloudy days.",
		"Avoid exfoliating products (retinols, AHAs, scrubs) for 3-5 days.",
		"Stay hydrated to maintain that fresh glow!",
	),
	"vitamin-c-facial": List(
		"Avoid heavy makeup for 12 hours to let your skin breathe.",
		"Avoid hot showers, saunas, or steam rooms for 24 hours.",
		"Use gentle cleansers and moisturizers.",
		"Always apply broad-spectrum SPF 30+ daily, even on cloudy days.",
		"Stay hydrated to maintain that fresh glow!",
	),
	"classic-facial": List(
		"Avoid heavy makeup for 12 hours to let your skin breathe.",
		"Avoid hot showers, saunas, or steam rooms for 24 hours.",
		"Use gentle cleansers and moisturizers.",
		"Always apply broad-spectrum SPF 30+ daily, even on cloudy days.",
		"Stay hydrated to maintain that fresh glow!",
	),
	"glow-facial": List(
		"Avoid heavy makeup for 12 hours to let your skin breathe.",
		"Avoid hot showers, saunas, or steam rooms for 24 hours.",
		"Use gentle cleansers and moisturizers.",
		"Always apply broad-spectrum SPF 30+ daily, even on cloudy days.",
		"Stay hydrated to maintain that fresh glow!",
	),
	"deep-cleansing": List(
		"Avoid heavy makeup for 12 hours to let your skin breathe.",
		"Avoid hot showers, saunas, or steam rooms for 24 hours.",
		"Use gentle cleansers and moisturizers.",
		"Always apply broad-spectrum SPF 30+ daily, even on cloudy days.",
		"Stay hydrated to maintain that fresh glow!",
	),
	"c2o2-oxygen-facial": Sectioned(Sections{
		General: []string{
			"Skin may appear flushed or feel warm immediately after the treatment — this is normal and typically subsides within a few hours.",
			"Avoid heavy makeup for 12–24 hours to allow the skin to fully benefit from the oxygenation process.",
			"Use only gentle, hydrating skincare products for the first 24–48 hours.",
			"Avoid active ingredients such as retinol, AHAs, BHAs, benzoyl peroxide, and exfoliants for at least 48 hours.",
			"Avoid saunas, steam rooms, hot yoga, and intense workouts for 24 hours.",
			"Apply broad-spectrum SPF 30–50 daily, as oxygenated skin may be more sensitive to sun exposure.",
			"Stay well hydrated to support circulation and prolong your glow.",
			"Mild tingling or tightness may occur and is temporary.",
			"Frequency depends on the severity of acne or congestion, typically recommended every 1–4 weeks.",
		},
		Contraindications: []string{
			"Allergies or sensitivities to citrus, pineapple, papaya, or cocoa.",
			"Use of Accutane (isotretinoin) within the last 12 months.",
			"Highly inflamed, compromised, or overly sensitized skin.",
			"Recent chemical peel within the last 2 weeks or recent aggressive laser treatments.",
			"Pregnant or nursing clients — some components of intensive oxygen treatments may not be recommended.",
			"Active skin infections, including cold sores (herpes simplex) or bacterial/fungal infections.",
		},
	}),
	"acne-treatment": List(
		"Avoid heavy makeup for 12-24 hours to let your skin breathe.",
		"Avoid hot showers, saunas, or steam rooms for 24 hours.",
		"Use gentle cleansers and moisturizers.",
		"Always apply broad-spectrum SPF 30+ daily, even on cloudy days.",
		"Stay hydrated to maintain that fresh glow!",
	),
	"customized-back-facial": List(
		"Avoid tight clothing or friction on the treated area for 24–48 hours to prevent irritation.",
		"Do not work out, sweat excessively, or use saunas/steam rooms for 24 hours after treatment.",
		"Avoid sun exposure and tanning for at least 48 hours; apply SPF 30–50 if skin will be exposed.",
		"Use a gentle, fragrance-free cleanser and keep the area hydrated with a non-comedogenic moisturizer.",
		"Avoid exfoliating products, scrubs, retinol, or acids for 5–7 days, especially if you had an enzyme peel or microdermabrasion add-on.",
		"Do not pick, scratch, or squeeze any areas that may purge or feel bumpy — allow the skin to heal naturally.",
		"Shower after 12–24 hours with lukewarm water and mild soap (no body scrubs or loofahs).",
		"Change into clean, loose-fitting clothes after your treatment to avoid bacteria transfer from fabric or sweat.",
		"Drink plenty of water to support detoxification and skin healing.",
		"If irritation, redness, or dryness occurs, apply a soothing, unscented lotion or aloe gel and avoid active ingredients until skin feels calm.",
	),
	"led-facial": List(
		"Avoid heavy makeup for 12 hours to let your skin breathe.",
		"Avoid hot showers, saunas, or steam rooms for 24 hours.",
		"Use gentle cleansers and moisturizers.",
		"Always apply broad-spectrum SPF 30+ daily, even on cloudy days.",
		"Stay hydrated to maintain that fresh glow!",
	),
	"oxygen-facial": List(
		"Avoid heavy makeup for 12 hours to let your skin breathe.",
		"Avoid hot showers, saunas, or steam rooms for 24 hours.",
		"Use gentle cleansers and moisturizers.",
		"Always apply broad-spectrum SPF 30+ daily, even on cloudy days.",
		"Stay hydrated to maintain that fresh glow!",
	),
	"gold-facial": List(
		"Avoid heavy makeup for 12 hours to let your skin breathe.",
		"Avoid hot showers, saunas, or steam rooms for 24 hours.",
		"Use gentle cleansers and moisturizers.",
		"Always apply broad-spectrum SPF 30+ daily, even on cloudy days.",
		"Stay hydrated to maintain that fresh glow!",
	),
	"slimming-treatment": Sectioned(Sections{
		Body: []string{
			"Do not eat for 1 hour after the session.",
			"Shower after 4–6 hours (avoid very hot water).",
			"Drink at least 1.5L of water within the day to support lymphatic drainage.",
			"Avoid alcohol for 48 hours.",
			"No sauna, hot springs, steam rooms, or strenuous exercise for 3 days.",
			"Avoid cold or very spicy foods; follow a low-fat, low-starch, low-sugar diet for the next 48–72 hours.",
			"Do at least 20 minutes of light–moderate exercise (e.g., brisk walking) on the same day to stimulate lymph detox.",
		},
		Face: []string{
			"Avoid washing face with overheated water for 3 days",
			"Keep skin hydrated",
			"Apply broad-spectrum SPF 30–50 daily; avoid direct sun exposure.",
			"Avoid sauna steaming, hot springs, or other strenuous exercises for 7 days",
			"It is better not to use alcohol, AHA, or other exfoliating products within 3 days",
			"Use a gentle, hydrating cleanser for the next 24–48 hours",
			"Avoid facial waxing, threading, or laser on the area for 7 days",
			"Stay well hydrated and avoid alcohol for 48 hours",
		},
		General: []string{
			"Typical result range: ~1–2.5 inches loss per area within ~4 weeks (results vary by individual and treatment plan).",
			"For lasting results, maintain a balanced diet and regular exercise; follow your customized session plan (often a series of 10–12 sessions).",
		},
		Contraindications: []string{
			"Pregnant or breastfeeding.",
			"Heart disease or implanted heart pacemaker.",
			"Unhealed surgical wounds or currently in post-op recovery (including cosmetic surgery).",
			"Epilepsy.",
			"Severe diabetes.",
			"Hyperthyroidism.",
			"Malignant tumours.",
		},
	}),
}
