package seed

import "github.com/shaunak67/knownest-final/internal/model"

// seedCategories は初期投入する5カテゴリ。
var seedCategories = []model.Category{
	{
		ID:          "cat_first_aid",
		Name:        "First Aid",
		Slug:        "first-aid",
		Description: "Essential first aid knowledge for emergencies. Learn CPR, wound care, and life-saving techniques.",
		Icon:        "heart",
		ImageURL:    "https://images.unsplash.com/photo-1611923973164-e0e5f7f69872?crop=entropy&cs=srgb&fm=jpg&q=85",
	},
	{
		ID:          "cat_finance",
		Name:        "Finance",
		Slug:        "finance",
		Description: "Navigate your financial world confidently. From taxes to banking, learn money management essentials.",
		Icon:        "dollar-sign",
		ImageURL:    "https://images.unsplash.com/photo-1763730512449-f1a505f432a9?crop=entropy&cs=srgb&fm=jpg&q=85",
	},
	{
		ID:          "cat_crisis",
		Name:        "Crisis Management",
		Slug:        "crisis-management",
		Description: "Be prepared for any crisis. Self-defense techniques, disaster preparedness, and survival skills.",
		Icon:        "shield",
		ImageURL:    "https://images.unsplash.com/photo-1769095211047-472fbd40f58d?crop=entropy&cs=srgb&fm=jpg&q=85",
	},
	{
		ID:          "cat_civic",
		Name:        "Civic Sense",
		Slug:        "civic-sense",
		Description: "Your rights and responsibilities as a citizen. Voting, RTI, and community engagement.",
		Icon:        "flag",
		ImageURL:    "https://images.unsplash.com/photo-1597700331582-aab3614b3c0c?crop=entropy&cs=srgb&fm=jpg&q=85",
	},
	{
		ID:          "cat_safety",
		Name:        "Safety Tips",
		Slug:        "safety-tips",
		Description: "Stay safe in every situation. Road safety, cyber security, food safety, and more.",
		Icon:        "alert-triangle",
		ImageURL:    "https://images.unsplash.com/photo-1770430724878-ef327337a9ae?crop=entropy&cs=srgb&fm=jpg&q=85",
	},
}

// seedTopics は初期投入する22トピック。
var seedTopics = []model.Topic{
	// First Aid
	{
		ID:           "t_cpr",
		CategorySlug: "first-aid",
		Title:        "CPR - Cardiopulmonary Resuscitation",
		Description:  "Learn how to perform CPR to save lives during cardiac emergencies.",
		Content:      "CPR is a life-saving technique used when someone's heart stops beating. Steps: 1) Call emergency services. 2) Place the heel of your hand on the center of the chest. 3) Push hard and fast at 100-120 compressions per minute. 4) Give 2 rescue breaths after every 30 compressions. 5) Continue until help arrives. Remember: Hands-only CPR is better than no CPR.",
		Icon:         "activity",
		Tags:         []string{"cpr", "heart", "emergency", "life-saving"},
	},
	{
		ID:           "t_burns",
		CategorySlug: "first-aid",
		Title:        "Burns Treatment",
		Description:  "How to treat different types of burns effectively.",
		Content:      "For minor burns: 1) Cool the burn under running water for 10-20 minutes. 2) Don't use ice. 3) Cover with a sterile bandage. 4) Take over-the-counter pain relief. For severe burns: 1) Call emergency services immediately. 2) Don't remove stuck clothing. 3) Cover with a clean cloth. 4) Keep the person warm. Never apply butter or toothpaste to burns.",
		Icon:         "thermometer",
		Tags:         []string{"burns", "treatment", "skin", "first-aid"},
	},
	{
		ID:           "t_choking",
		CategorySlug: "first-aid",
		Title:        "Choking - Heimlich Maneuver",
		Description:  "Learn the Heimlich maneuver to help someone who is choking.",
		Content:      "If someone is choking: 1) Ask 'Are you choking?' If they can't speak, act immediately. 2) Stand behind them, wrap arms around their waist. 3) Make a fist with one hand, place it above the navel. 4) Grasp your fist with the other hand. 5) Give quick upward thrusts. 6) Repeat until the object is expelled. For infants: Use back blows and chest thrusts.",
		Icon:         "alert-circle",
		Tags:         []string{"choking", "heimlich", "airway", "emergency"},
	},
	{
		ID:           "t_bleeding",
		CategorySlug: "first-aid",
		Title:        "Controlling Severe Bleeding",
		Description:  "Techniques to control severe bleeding in emergencies.",
		Content:      "Steps to control bleeding: 1) Apply direct pressure with a clean cloth. 2) Keep pressing firmly for 15 minutes. 3) If blood soaks through, add more cloth on top. 4) Elevate the injured area above the heart. 5) Apply a tourniquet only as a last resort, 2-3 inches above the wound. 6) Call emergency services immediately for severe bleeding.",
		Icon:         "droplet",
		Tags:         []string{"bleeding", "wound", "pressure", "emergency"},
	},
	{
		ID:           "t_fractures",
		CategorySlug: "first-aid",
		Title:        "Fracture First Aid",
		Description:  "How to provide first aid for bone fractures.",
		Content:      "First aid for fractures: 1) Keep the person still. 2) Stabilize the injured area - don't try to realign. 3) Apply ice packs wrapped in cloth. 4) Immobilize with a splint if possible. 5) Check circulation below the injury. 6) Treat for shock if needed. Signs of a fracture: intense pain, swelling, deformity, inability to move the limb.",
		Icon:         "minus-circle",
		Tags:         []string{"fracture", "bone", "splint", "injury"},
	},

	// Finance
	{
		ID:           "t_taxes",
		CategorySlug: "finance",
		Title:        "Understanding Income Tax",
		Description:  "A beginner's guide to filing income tax returns.",
		Content:      "Income tax essentials: 1) Know your tax slab based on income. 2) Gather Form 16 from employer. 3) Collect investment proofs for deductions (80C, 80D). 4) File returns online at the tax department website. 5) Claim deductions: PPF, ELSS, insurance premiums. 6) Keep records for 7 years. Key dates: Usually July 31 for individuals. Late filing incurs penalties.",
		Icon:         "file-text",
		Tags:         []string{"tax", "income", "filing", "deductions"},
	},
	{
		ID:           "t_pan",
		CategorySlug: "finance",
		Title:        "PAN Card - Application & Uses",
		Description:  "Everything about PAN card - application, correction, and uses.",
		Content:      "PAN (Permanent Account Number) is essential for: 1) Filing tax returns. 2) Opening bank accounts. 3) High-value transactions. How to apply: Visit NSDL or UTIITSL websites. Documents needed: ID proof, address proof, date of birth proof. Processing time: 15-20 days. For corrections: Submit a correction form online. Link PAN with Aadhaar to keep it active.",
		Icon:         "credit-card",
		Tags:         []string{"pan", "card", "identity", "government"},
	},
	{
		ID:           "t_banking",
		CategorySlug: "finance",
		Title:        "Banking Essentials",
		Description:  "Understanding savings accounts, fixed deposits, and digital banking.",
		Content:      "Banking basics: 1) Choose between savings and current accounts based on needs. 2) Maintain minimum balance to avoid charges. 3) Use UPI for instant transfers. 4) Set up auto-pay for recurring bills. 5) FD rates vary - compare before investing. 6) Enable two-factor authentication. 7) Never share OTPs or PINs. Digital banking tips: Use official apps, check statements regularly.",
		Icon:         "briefcase",
		Tags:         []string{"banking", "savings", "digital", "upi"},
	},
	{
		ID:           "t_budgeting",
		CategorySlug: "finance",
		Title:        "Personal Budgeting",
		Description:  "Create and maintain a personal budget for financial health.",
		Content:      "The 50/30/20 rule: 50% needs, 30% wants, 20% savings. Steps: 1) Track all income sources. 2) List fixed expenses (rent, EMIs). 3) Track variable expenses for a month. 4) Set spending limits per category. 5) Build an emergency fund (3-6 months expenses). 6) Review and adjust monthly. Tools: Use budgeting apps or simple spreadsheets.",
		Icon:         "pie-chart",
		Tags:         []string{"budget", "savings", "planning", "money"},
	},
	{
		ID:           "t_insurance",
		CategorySlug: "finance",
		Title:        "Insurance Guide",
		Description:  "Types of insurance and how to choose the right coverage.",
		Content:      "Essential insurance types: 1) Health insurance - covers medical expenses. 2) Term life insurance - protects dependents. 3) Vehicle insurance - mandatory by law. 4) Home insurance - covers property damage. How to choose: Compare premiums, check claim settlement ratio, read policy terms. Ideal coverage: Health - 10-15 lakh minimum. Term - 10-15x annual income.",
		Icon:         "shield",
		Tags:         []string{"insurance", "health", "life", "coverage"},
	},

	// Crisis Management
	{
		ID:           "t_self_defense",
		CategorySlug: "crisis-management",
		Title:        "Basic Self-Defense",
		Description:  "Essential self-defense techniques everyone should know.",
		Content:      "Key self-defense principles: 1) Be aware of surroundings. 2) Trust your instincts. 3) Target vulnerable areas: eyes, nose, throat, groin, knees. 4) Use palm strikes instead of punches. 5) Break free from grabs - rotate toward the thumb. 6) Make noise and attract attention. 7) Run when possible - escaping is winning. Take a formal self-defense class for hands-on training.",
		Icon:         "zap",
		Tags:         []string{"self-defense", "safety", "protection", "awareness"},
	},
	{
		ID:           "t_fire_safety",
		CategorySlug: "crisis-management",
		Title:        "Fire Safety & Evacuation",
		Description:  "What to do during a fire emergency.",
		Content:      "Fire safety: 1) Install smoke detectors on every floor. 2) Keep fire extinguishers accessible. 3) Plan escape routes - two ways out of every room. During a fire: 1) Alert everyone - shout 'FIRE!' 2) Stay low to avoid smoke. 3) Feel doors before opening - hot means fire behind. 4) Use stairs, never elevators. 5) Stop, Drop, and Roll if clothes catch fire. 6) Call fire services from outside.",
		Icon:         "alert-triangle",
		Tags:         []string{"fire", "evacuation", "safety", "emergency"},
	},
	{
		ID:           "t_earthquake",
		CategorySlug: "crisis-management",
		Title:        "Earthquake Preparedness",
		Description:  "How to stay safe during and after an earthquake.",
		Content:      "During an earthquake: 1) DROP to hands and knees. 2) Take COVER under a sturdy table. 3) HOLD ON until shaking stops. 4) Stay away from windows and heavy objects. 5) If outdoors, move to an open area. After: 1) Check for injuries. 2) Expect aftershocks. 3) Check gas and water lines. 4) Don't use elevators. Prepare: Keep an emergency kit with water, food, flashlight, and first aid.",
		Icon:         "activity",
		Tags:         []string{"earthquake", "disaster", "preparedness", "safety"},
	},
	{
		ID:           "t_flood",
		CategorySlug: "crisis-management",
		Title:        "Flood Survival Guide",
		Description:  "Essential steps to survive flood situations.",
		Content:      "Before a flood: 1) Know your area's flood risk. 2) Prepare an emergency kit. 3) Keep important documents in waterproof bags. During: 1) Move to higher ground immediately. 2) Never walk or drive through floodwater. 3) 6 inches of water can knock you down. 4) Avoid touching electrical equipment. After: 1) Don't drink tap water until cleared. 2) Watch for weakened structures. 3) Document damage for insurance.",
		Icon:         "cloud-rain",
		Tags:         []string{"flood", "water", "disaster", "survival"},
	},

	// Civic Sense
	{
		ID:           "t_voting",
		CategorySlug: "civic-sense",
		Title:        "Voting Rights & Process",
		Description:  "Your guide to exercising your right to vote.",
		Content:      "Voting essentials: 1) Register to vote - check eligibility (18+ years, citizen). 2) Get your voter ID card. 3) Check your name on the electoral roll. 4) Know your polling booth. On election day: 1) Carry voter ID. 2) Verify your details. 3) Cast your vote using EVM. 4) Get the ink mark. Your vote is secret - no one can force you to reveal your choice. Report any malpractice to the Election Commission.",
		Icon:         "check-square",
		Tags:         []string{"voting", "election", "democracy", "rights"},
	},
	{
		ID:           "t_rti",
		CategorySlug: "civic-sense",
		Title:        "Right to Information (RTI)",
		Description:  "How to file an RTI application for government transparency.",
		Content:      "RTI empowers citizens to seek information from public authorities. How to file: 1) Write an application to the Public Information Officer. 2) Be specific about information sought. 3) Pay the nominal fee (Rs 10 for central govt). 4) Response due within 30 days. 5) File first appeal within 30 days if unsatisfied. 6) Second appeal goes to Information Commission. RTI applies to all government bodies and entities receiving government funding.",
		Icon:         "file-text",
		Tags:         []string{"rti", "information", "government", "transparency"},
	},
	{
		ID:           "t_traffic",
		CategorySlug: "civic-sense",
		Title:        "Traffic Rules & Road Discipline",
		Description:  "Essential traffic rules every citizen should follow.",
		Content:      "Traffic rules: 1) Always wear seatbelts/helmets. 2) Follow speed limits. 3) Don't use phones while driving. 4) Yield to pedestrians at crosswalks. 5) Obey traffic signals - red means stop. 6) Don't drink and drive. 7) Use indicators before turning. 8) Maintain safe following distance. 9) Honk only when necessary. Fines have increased significantly - follow rules to save lives and money.",
		Icon:         "navigation",
		Tags:         []string{"traffic", "rules", "road", "driving"},
	},
	{
		ID:           "t_hygiene",
		CategorySlug: "civic-sense",
		Title:        "Public Hygiene & Cleanliness",
		Description:  "Maintaining cleanliness in public spaces.",
		Content:      "Public hygiene practices: 1) Don't litter - use dustbins. 2) Segregate waste - wet and dry. 3) Cover mouth while sneezing/coughing. 4) Wash hands frequently. 5) Don't spit in public. 6) Clean up after pets. 7) Report blocked drains or garbage accumulation. 8) Participate in community clean-up drives. Good hygiene prevents diseases and creates a pleasant environment for everyone.",
		Icon:         "trash-2",
		Tags:         []string{"hygiene", "cleanliness", "public", "health"},
	},

	// Safety Tips
	{
		ID:           "t_road_safety",
		CategorySlug: "safety-tips",
		Title:        "Road Safety Tips",
		Description:  "Stay safe on roads as a pedestrian, cyclist, or driver.",
		Content:      "Road safety: 1) Pedestrians: Use crosswalks, look both ways, wear bright clothing at night. 2) Cyclists: Wear helmets, use bike lanes, have lights. 3) Drivers: Regular vehicle maintenance, don't speed, no distractions. 4) Children: Always hold hands, teach road signs. 5) Night driving: Use headlights, reduce speed. Most accidents are preventable with awareness and patience.",
		Icon:         "map",
		Tags:         []string{"road", "safety", "pedestrian", "driving"},
	},
	{
		ID:           "t_cyber_safety",
		CategorySlug: "safety-tips",
		Title:        "Cyber Safety",
		Description:  "Protect yourself online from scams and cyber threats.",
		Content:      "Cyber safety tips: 1) Use strong, unique passwords. 2) Enable two-factor authentication. 3) Don't click suspicious links. 4) Verify sender before sharing info. 5) Keep software updated. 6) Don't share OTPs or bank details. 7) Use secure Wi-Fi networks. 8) Regular backups. 9) Check URLs before entering credentials. 10) Report suspicious activity immediately. Common scams: phishing emails, fake job offers, lottery frauds.",
		Icon:         "lock",
		Tags:         []string{"cyber", "online", "security", "privacy"},
	},
	{
		ID:           "t_food_safety",
		CategorySlug: "safety-tips",
		Title:        "Food Safety",
		Description:  "Guidelines for safe food handling and storage.",
		Content:      "Food safety rules: 1) Wash hands before cooking. 2) Cook food to proper temperatures. 3) Refrigerate within 2 hours. 4) Don't cross-contaminate - separate raw and cooked. 5) Check expiry dates. 6) Wash fruits and vegetables. 7) Use clean utensils. 8) When in doubt, throw it out. Temperature danger zone: 4°C to 60°C - bacteria multiply rapidly. Reheat food to at least 74°C.",
		Icon:         "coffee",
		Tags:         []string{"food", "safety", "hygiene", "cooking"},
	},
	{
		ID:           "t_home_safety",
		CategorySlug: "safety-tips",
		Title:        "Home Safety",
		Description:  "Make your home safe for everyone, especially children and elderly.",
		Content:      "Home safety checklist: 1) Install smoke detectors and CO monitors. 2) Keep fire extinguisher accessible. 3) Store medicines and chemicals safely. 4) Secure heavy furniture to walls. 5) Use non-slip mats in bathrooms. 6) Keep emergency numbers visible. 7) Check electrical wiring regularly. 8) Install window guards for children. 9) Adequate lighting on stairs. 10) Lock away sharp objects and tools.",
		Icon:         "home",
		Tags:         []string{"home", "safety", "childproofing", "elderly"},
	},
}
