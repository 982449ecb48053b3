package usecase

import (
	"github.com/TechBirds21/hospital-web-hub/internal/delivery/dto"
)

// ContentUsecase serves the static marketing catalog. No persistence, no
// auth, no per-request variation.
type ContentUsecase interface {
	ModulesPreview() []dto.Module
	V1Features() []dto.Feature
}

type contentUsecase struct{}

func NewContentUsecase() ContentUsecase {
	return &contentUsecase{}
}

func (u *contentUsecase) ModulesPreview() []dto.Module {
	return []dto.Module{
		{
			ID:          "1",
			Title:       "AI-Powered Hospital Management",
			Description: "Comprehensive hospital operations platform with artificial intelligence for patient flow optimization, predictive analytics, and intelligent resource allocation.",
			Image:       "https://images.unsplash.com/photo-1576091160399-112ba8d25d1f?w=800&h=600&fit=crop",
			Features: []string{
				"Smart Patient Flow Management",
				"Predictive Resource Allocation",
				"Intelligent Staff Scheduling",
				"Emergency Response Optimization",
			},
			AICapabilities: []string{
				"Predictive Analytics for Patient Admission",
				"AI-Driven Bed Management",
				"Smart Resource Optimization",
				"Automated Report Generation",
			},
			Stats: dto.ModuleStats{Interest: 12, AIAccuracy: "95%"},
		},
		{
			ID:          "2",
			Title:       "Smart Dental Practice Suite",
			Description: "AI-enhanced dental practice management with intelligent appointment scheduling, treatment recommendation system, and patient care optimization.",
			Image:       "https://images.unsplash.com/photo-1609840114035-3c981b782dfe?w=800&h=600&fit=crop",
			Features: []string{
				"Intelligent Appointment Scheduling",
				"Treatment Planning Assistant",
				"Patient Communication Hub",
				"Insurance Processing Automation",
			},
			AICapabilities: []string{
				"AI Treatment Recommendations",
				"Smart Appointment Optimization",
				"Predictive Patient Needs",
				"Automated Documentation",
			},
			Stats: dto.ModuleStats{Interest: 8, AIAccuracy: "92%"},
		},
		{
			ID:          "3",
			Title:       "Aesthetic & Dermatology AI Suite",
			Description: "Advanced AI-powered dermatology platform with skin analysis, treatment prediction, and personalized care recommendations for aesthetic practices.",
			Image:       "https://images.unsplash.com/photo-1612277795421-9bc7706a4a34?w=800&h=600&fit=crop",
			Features: []string{
				"AI Skin Analysis & Diagnosis",
				"Treatment Outcome Prediction",
				"Personalized Care Plans",
				"Progress Tracking System",
			},
			AICapabilities: []string{
				"Computer Vision Skin Analysis",
				"Treatment Outcome Prediction",
				"Personalized Product Recommendations",
				"Progress Monitoring AI",
			},
			Stats: dto.ModuleStats{Interest: 5, AIAccuracy: "88%"},
		},
	}
}

func (u *contentUsecase) V1Features() []dto.Feature {
	return []dto.Feature{
		{
			ID:          "1",
			Title:       "AI-Powered Discovery Engine",
			Description: "Revolutionary healthcare discovery powered by machine learning algorithms that understand patient needs, medical specialties, and real-time availability with 95% accuracy.",
			Icon:        "Search",
			Image:       "https://images.unsplash.com/photo-1576091160550-2173dba999ef?w=800&h=600&fit=crop",
			Benefits: []string{
				"Intelligent patient-hospital matching with AI algorithms",
				"Real-time availability tracking across all departments",
				"Predictive analytics for optimal resource allocation",
				"Multi-language support with medical terminology",
				"Advanced filtering by specialty, location, and insurance",
				"Integration with existing hospital management systems",
			},
			AIFeatures: []string{
				"Machine Learning Patient Matching",
				"Predictive Demand Forecasting",
				"Natural Language Processing",
				"Computer Vision for Medical Imaging",
			},
			Stats: dto.FeatureStats{
				Efficiency:    "+65%",
				Adoption:      "98%",
				Satisfaction:  4.9,
				PilotInterest: 20,
			},
			DemoVideo: "https://www.youtube.com/watch?v=demo1",
		},
		{
			ID:          "2",
			Title:       "Smart Appointment System",
			Description: "AI-enhanced appointment management with intelligent scheduling, automated confirmations, and predictive no-show prevention that reduces missed appointments by 40%.",
			Icon:        "Calendar",
			Image:       "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=800&h=600&fit=crop",
			Benefits: []string{
				"One-click booking with AI-powered scheduling",
				"Smart calendar synchronization across platforms",
				"Automated reminder system via SMS, email, and WhatsApp",
				"AI-driven waitlist management with automatic rebooking",
				"Insurance verification and pre-authorization",
				"Telemedicine integration for virtual consultations",
			},
			AIFeatures: []string{
				"Predictive No-Show Analysis",
				"Smart Scheduling Optimization",
				"Automated Communication AI",
				"Resource Utilization Prediction",
			},
			Stats: dto.FeatureStats{
				Efficiency:    "+50%",
				Adoption:      "95%",
				Satisfaction:  4.8,
				PilotInterest: 18,
			},
			DemoVideo: "https://www.youtube.com/watch?v=demo2",
		},
		{
			ID:          "3",
			Title:       "AI Analytics Dashboard",
			Description: "Advanced business intelligence platform with artificial intelligence providing real-time insights, predictive modeling, and automated decision support for healthcare operations.",
			Icon:        "BarChart3",
			Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&h=600&fit=crop",
			Benefits: []string{
				"Real-time operational dashboards with AI insights",
				"Patient journey analytics with behavioral prediction",
				"Revenue optimization with dynamic AI pricing models",
				"Predictive analytics for demand forecasting",
				"Custom reporting with automated AI-driven insights",
				"Compliance monitoring with anomaly detection",
			},
			AIFeatures: []string{
				"Predictive Revenue Analytics",
				"Patient Behavior Analysis",
				"Automated Anomaly Detection",
				"Smart Resource Forecasting",
			},
			Stats: dto.FeatureStats{
				Efficiency:    "+70%",
				Adoption:      "92%",
				Satisfaction:  4.9,
				PilotInterest: 15,
			},
			DemoVideo: "https://www.youtube.com/watch?v=demo3",
		},
	}
}
