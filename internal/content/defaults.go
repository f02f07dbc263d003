package content

// Defaults returns the built-in records of both views.
func Defaults() Bundle {
	return Bundle{Report: DefaultReport(), Preview: DefaultPreview()}
}

// DefaultReport returns the deployment-readiness records.
func DefaultReport() Report {
	return Report{
		Header: Header{
			Title:    "🛒 Yalla Shopping POS System",
			Subtitle: "Comprehensive Point of Sale System for Makeup & Beauty Products",
			Credits:  "Built with Streamlit + Google Sheets | Designed by Mohamed Ragab",
		},
		Banner: Banner{
			Title: "✅ System Status: READY FOR DEPLOYMENT",
			Body:  "All tests passed! Your POS system is ready to run.",
		},
		Results: Collection[TestResult]{
			Title: "🧪 Test Results",
			Items: []TestResult{
				{Name: "Dependencies Check", Status: StatusPass, Description: "All Python dependencies verified"},
				{Name: "Import Tests", Status: StatusPass, Description: "gspread, google-auth, streamlit imports OK"},
				{Name: "App Structure", Status: StatusPass, Description: "Main app.py structure validated"},
				{Name: "Database Schemas", Status: StatusPass, Description: "All Google Sheets schemas defined"},
				{Name: "Security Features", Status: StatusPass, Description: "Password protection implemented"},
				{Name: "Arabic Support", Status: StatusPass, Description: "RTL interface and Cairo timezone"},
			},
		},
		Features: Collection[FeatureItem]{
			Title: "✨ Features Included",
			Items: []FeatureItem{
				"🧾 Complete POS System",
				"📦 Product Management",
				"👤 Customer Database",
				"📊 Real-time Dashboard",
				"📈 Sales Reports",
				"📥 Stock Management",
				"🔐 Password Protection",
				"🌐 Arabic Interface",
			},
		},
		Instructions: Instructions{
			Title: "🚀 How to Run the Application",
			Local: Command{
				Title: "Option 1: Local Testing",
				Lines: []string{
					"# Install dependencies",
					"pip install -r requirements.txt",
					"",
					"# Run tests",
					"python run_tests.py",
					"",
					"# Start the application",
					"streamlit run app.py",
				},
			},
			Cloud: Collection[InstructionStep]{
				Title: "Option 2: Streamlit Cloud Deployment",
				Items: []InstructionStep{
					{Index: 1, Inline: Inline{
						Text:     "Upload to GitHub: ",
						Fragment: &Fragment{Kind: FragmentCode, Text: "https://github.com/Mohmedragab2398/makeup-pos-system.git"},
					}},
					{Index: 2, Inline: Inline{
						Text:     "Deploy on ",
						Fragment: &Fragment{Kind: FragmentLink, Text: "share.streamlit.io", Href: "https://share.streamlit.io"},
					}},
					{Index: 3, Inline: Inline{
						Text:     "Set main file path: ",
						Fragment: &Fragment{Kind: FragmentCode, Text: "app.py"},
					}},
					{Index: 4, Inline: Inline{Text: "Configure secrets (SPREADSHEET_ID, service account)"}},
				},
			},
			Login: Note{
				Label: "Default Login:",
				Inline: Inline{
					Text:     "Password is ",
					Fragment: &Fragment{Kind: FragmentCode, Text: "yalla2024"},
				},
			},
			Actions: []Action{
				{Label: "Ready to Run Locally", Icon: ActionRun, Primary: true},
				{Label: "Deploy to GitHub", Icon: ActionRepo},
				{Label: "View Documentation", Icon: ActionDocs},
			},
		},
		Requirements: Collection[string]{
			Title: "📋 System Requirements",
			Items: []string{
				"Python 3.11.9",
				"Google Sheets API access",
				"Streamlit Cloud account (for deployment)",
				"Service Account credentials",
			},
		},
		NextSteps: Collection[InstructionStep]{
			Title: "📝 Next Steps",
			Items: []InstructionStep{
				{Index: 1, Inline: Inline{
					Text:     "✅ Test locally with ",
					Fragment: &Fragment{Kind: FragmentCode, Text: "streamlit run app.py"},
				}},
				{Index: 2, Inline: Inline{Text: "🌐 Deploy to Streamlit Cloud"}},
				{Index: 3, Inline: Inline{Text: "⚙️ Configure Google Sheets integration"}},
				{Index: 4, Inline: Inline{Text: "🎯 Start using your POS system!"}},
			},
		},
		Footer: Footer{
			Title: "🎉 Your Yalla Shopping POS System is ready for deployment!",
			Body:  "All files have been prepared and tested. You can now run the application or deploy to GitHub.",
		},
	}
}

// DefaultPreview returns the branding preview records.
func DefaultPreview() Preview {
	return Preview{
		Branding: Branding{
			Initials: "YS",
			Name:     "Yalla Shopping",
			Owner:    "Py Saso Mostafa",
			Designer: "Designed by Mohamed Ragab",
		},
		Title: "🛒 Yalla Shopping POS System",
		Intro: "واجهة تعمل من اللابتوب والموبايل. قاعدة بيانات: Google Sheets.",
		Features: Collection[FeatureItem]{
			Title: "Features Updated:",
			Items: []FeatureItem{
				"✅ New Yalla Shopping logo integration",
				`✅ Updated branding with "Py Saso Mostafa"`,
				"✅ Enhanced invoice design with logo",
				"✅ Professional logo display throughout app",
				"✅ Automatic logo detection system",
				"✅ Fallback logo system for reliability",
			},
		},
		Sections: Collection[Section]{
			Title: "App Sections:",
			Items: []Section{
				"📊 لوحة المعلومات",
				"🧾 بيع جديد (POS)",
				"📦 المنتجات",
				"👤 العملاء",
				"📥 حركة المخزون",
				"📈 التقارير",
				"⚙️ الإعدادات",
			},
		},
		Logo: LogoIntegration{
			Title: "Logo Integration:",
			Intro: "The new circular teal logo with woman silhouette and decorative leaves has been integrated into:",
			Places: []string{
				"Main app header display",
				"Customer invoice generation",
				"Settings page management",
				"Professional branding throughout",
			},
		},
		Footer: Footer{
			Title: "Streamlit POS System - Ready for Deployment",
			Body:  "Save logo as assets/logo_yalla_shopping.png to activate new branding",
		},
	}
}
