package services

import "revive_physio_go/models"

// conditions is the compiled registry of treated conditions. It is built at
// deploy time and never mutated; slugs here feed the sitemap and the
// /conditions/:slug routes.
var conditions = []models.Condition{
	{
		ID:    "back-pain",
		Slug:  "back-pain",
		Title: "Back Pain",
		Summary: models.ConditionSummary{
			WhatItIs:       "Pain in the lower, middle, or upper back, often from muscle strain, disc problems, or poor posture. It can be sharp and sudden or a dull ache that builds over weeks.",
			WhenToSeekHelp: "See a physiotherapist if pain lasts more than two weeks, radiates into a leg, or limits your daily routine.",
		},
		Content: models.ConditionContent{
			Overview:          "<p>Back pain is the most common reason patients visit our clinic. Most cases involve the muscles, ligaments, and joints of the spine rather than serious structural damage, which means they respond very well to guided movement and progressive loading.</p>",
			TreatmentApproach: "<p>We combine manual therapy for short-term relief with an individualized exercise program that addresses the strength and mobility deficits driving the pain. Most patients see meaningful improvement within four to six sessions.</p>",
		},
		SEO: models.ConditionSEO{
			Title:       "Back Pain Treatment | Revive Physiotherapy",
			Description: "Evidence-based physiotherapy for acute and chronic back pain. Manual therapy, exercise rehabilitation, and posture retraining from experienced physiotherapists.",
			Keywords:    "back pain treatment, lower back pain physiotherapy, spine rehabilitation",
		},
	},
	{
		ID:    "neck-pain",
		Slug:  "neck-pain",
		Title: "Neck Pain & Cervical Spondylosis",
		Summary: models.ConditionSummary{
			WhatItIs:       "Stiffness, pain, or reduced movement in the neck, frequently linked to prolonged desk work, whiplash, or age-related changes in the cervical spine.",
			WhenToSeekHelp: "Seek help if neck pain comes with headaches, tingling in the arms, or does not settle within a week of rest.",
		},
		Content: models.ConditionContent{
			Overview:          "<p>Modern work habits have made neck pain one of the fastest-growing complaints we treat. Long hours at screens load the deep neck flexors and upper trapezius in ways they were never designed for.</p>",
			TreatmentApproach: "<p>Treatment focuses on restoring cervical mobility, strengthening the deep stabilizers, and redesigning your workstation habits so the pain does not return.</p>",
		},
		SEO: models.ConditionSEO{
			Title:       "Neck Pain & Cervical Spondylosis Treatment | Revive Physiotherapy",
			Description: "Relief from neck pain, cervical spondylosis, and tech-neck with targeted physiotherapy, mobility work, and ergonomic coaching.",
			Keywords:    "neck pain treatment, cervical spondylosis physiotherapy, tech neck",
		},
	},
	{
		ID:    "knee-pain",
		Slug:  "knee-pain",
		Title: "Knee Pain & Osteoarthritis",
		Summary: models.ConditionSummary{
			WhatItIs:       "Pain around or inside the knee joint from ligament injuries, cartilage wear, patellofemoral problems, or osteoarthritis.",
			WhenToSeekHelp: "Book an assessment if your knee swells after activity, gives way, or stairs have become difficult.",
		},
		Content: models.ConditionContent{
			Overview:          "<p>Knee pain rarely improves with rest alone. Strengthening the muscles around the joint reduces load on the painful structures and is the single best-evidenced treatment for knee osteoarthritis.</p>",
			TreatmentApproach: "<p>After a movement assessment we build a progressive strengthening plan for the quadriceps, hamstrings, and hips, supported by manual therapy and taping where needed.</p>",
		},
		SEO: models.ConditionSEO{
			Title:       "Knee Pain & Osteoarthritis Treatment | Revive Physiotherapy",
			Description: "Physiotherapy for knee pain, ligament injuries, and osteoarthritis. Strengthen, stabilize, and return to the activities you love.",
			Keywords:    "knee pain physiotherapy, knee osteoarthritis treatment, ACL rehabilitation",
		},
	},
	{
		ID:    "frozen-shoulder",
		Slug:  "frozen-shoulder",
		Title: "Frozen Shoulder",
		Summary: models.ConditionSummary{
			WhatItIs:       "Adhesive capsulitis - a gradual stiffening of the shoulder capsule that makes reaching overhead or behind the back painful and eventually impossible.",
			WhenToSeekHelp: "Early treatment shortens the course of the condition; see us as soon as shoulder movement starts to feel restricted.",
		},
		Content: models.ConditionContent{
			Overview:          "<p>Frozen shoulder moves through freezing, frozen, and thawing phases that can take months to years without treatment. Physiotherapy at the right intensity for each phase meaningfully shortens that timeline.</p>",
			TreatmentApproach: "<p>We match treatment to the phase: gentle pain-relieving techniques early, progressive capsular stretching and strengthening as irritability settles.</p>",
		},
		SEO: models.ConditionSEO{
			Title:       "Frozen Shoulder Treatment | Revive Physiotherapy",
			Description: "Phase-matched physiotherapy for frozen shoulder (adhesive capsulitis) to restore pain-free movement faster.",
			Keywords:    "frozen shoulder treatment, adhesive capsulitis physiotherapy, shoulder stiffness",
		},
	},
	{
		ID:    "sports-injuries",
		Slug:  "sports-injuries",
		Title: "Sports Injuries",
		Summary: models.ConditionSummary{
			WhatItIs:       "Sprains, strains, tendinopathies, and overuse injuries from sport and training, from weekend cricket to competitive running.",
			WhenToSeekHelp: "Any injury that keeps you out of training for more than a few days deserves a proper assessment and a structured return-to-sport plan.",
		},
		Content: models.ConditionContent{
			Overview:          "<p>Returning to sport too early is the biggest predictor of re-injury. A structured rehabilitation program restores not just tissue healing but the strength, power, and confidence sport demands.</p>",
			TreatmentApproach: "<p>We use objective strength and hop testing to progress you through rehab stages and clear you for return to play only when the numbers support it.</p>",
		},
		SEO: models.ConditionSEO{
			Title:       "Sports Injury Rehabilitation | Revive Physiotherapy",
			Description: "Sports physiotherapy with objective return-to-play testing for sprains, strains, and overuse injuries.",
			Keywords:    "sports injury physiotherapy, return to sport rehabilitation, tendinopathy treatment",
		},
	},
	{
		ID:    "post-surgical-rehab",
		Slug:  "post-surgical-rehab",
		Title: "Post-Surgical Rehabilitation",
		Summary: models.ConditionSummary{
			WhatItIs:       "Structured recovery programs after orthopedic surgery - joint replacements, ligament reconstructions, spinal surgery, and fracture fixation.",
			WhenToSeekHelp: "Rehabilitation should begin as soon as your surgeon clears you; the first weeks after surgery set the ceiling for your final outcome.",
		},
		Content: models.ConditionContent{
			Overview:          "<p>Surgery fixes the structure; rehabilitation restores the function. We work from your surgeon's protocol and progress you through each milestone safely.</p>",
			TreatmentApproach: "<p>Early sessions focus on swelling control and protected range of motion, then shift to progressive strengthening and a graded return to work and activity.</p>",
		},
		SEO: models.ConditionSEO{
			Title:       "Post-Surgical Rehabilitation | Revive Physiotherapy",
			Description: "Protocol-driven physiotherapy after joint replacement, ACL reconstruction, and spinal surgery.",
			Keywords:    "post surgery physiotherapy, knee replacement rehab, ACL reconstruction rehabilitation",
		},
	},
	{
		ID:    "sciatica",
		Slug:  "sciatica",
		Title: "Sciatica",
		Summary: models.ConditionSummary{
			WhatItIs:       "Pain radiating from the lower back down the leg along the sciatic nerve, often with numbness or tingling, usually from disc irritation or nerve root compression.",
			WhenToSeekHelp: "Seek urgent care for progressive weakness or changes in bladder or bowel control; otherwise book in if leg pain persists beyond a week.",
		},
		Content: models.ConditionContent{
			Overview:          "<p>True sciatica is nerve pain, and nerves recover differently from muscles. Most cases settle with guided movement, nerve mobilization, and time - surgery is rarely needed.</p>",
			TreatmentApproach: "<p>We identify the directional preference that eases your leg symptoms, build a program around it, and add nerve glides and graded spinal loading as irritability reduces.</p>",
		},
		SEO: models.ConditionSEO{
			Title:       "Sciatica Treatment | Revive Physiotherapy",
			Description: "Physiotherapy for sciatica and radiating leg pain: directional exercise, nerve mobilization, and graded loading.",
			Keywords:    "sciatica treatment, sciatic nerve pain physiotherapy, radiating leg pain",
		},
	},
	{
		ID:    "stroke-rehab",
		Slug:  "stroke-rehab",
		Title: "Stroke & Neuro Rehabilitation",
		Summary: models.ConditionSummary{
			WhatItIs:       "Movement retraining after stroke and other neurological conditions, focused on regaining walking, balance, and independence in daily tasks.",
			WhenToSeekHelp: "The earlier structured rehabilitation begins after a stroke, the better the recovery - home visits are available for patients who cannot travel.",
		},
		Content: models.ConditionContent{
			Overview:          "<p>The brain rewires itself through repetition. Neuro rehabilitation uses high-repetition, task-specific practice to rebuild movement patterns lost after a stroke.</p>",
			TreatmentApproach: "<p>Sessions target the tasks that matter to you - walking, stairs, dressing - with intensity and repetition calibrated to drive neuroplastic change.</p>",
		},
		SEO: models.ConditionSEO{
			Title:       "Stroke & Neuro Rehabilitation | Revive Physiotherapy",
			Description: "Task-specific neuro physiotherapy after stroke, with clinic and home-visit programs to rebuild walking and independence.",
			Keywords:    "stroke rehabilitation, neuro physiotherapy, balance retraining",
		},
	},
}

// Conditions returns the compiled condition registry.
func Conditions() []models.Condition {
	return conditions
}

// ConditionBySlug looks up one condition; ok is false for unknown slugs.
func ConditionBySlug(slug string) (models.Condition, bool) {
	for _, c := range conditions {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Condition{}, false
}
