package locale

var texts = map[string]map[string]string{
	"choose_language": {
		LangRU: "🌍 Выберите язык / Izaberite jezik / Choose language:",
		LangME: "🌍 Izaberite jezik / Выберите язык / Choose language:",
		LangEN: "🌍 Choose language / Выберите язык / Izaberite jezik:",
	},

	"welcome": {
		LangRU: "👋 Добро пожаловать!\n\n" +
			"Я помогу вам оставить заявку на строительно-ремонтные работы.\n\n" +
			"Используйте /new для создания новой заявки.",
		LangME: "👋 Dobrodošli!\n\n" +
			"Pomoći ću vam da pošaljete zahtjev za građevinske i renovacijske radove.\n\n" +
			"Koristite /new da kreirate novi zahtjev.",
		LangEN: "👋 Welcome!\n\n" +
			"I will help you submit a request for construction and renovation work.\n\n" +
			"Use /new to create a new request.",
	},

	"menu": {
		LangRU: "📋 Доступные команды:\n\n" +
			"/new - Создать новую заявку\n" +
			"/language - Сменить язык\n" +
			"/cancel - Отменить текущую заявку\n" +
			"/help - Помощь",
		LangME: "📋 Dostupne komande:\n\n" +
			"/new - Kreirati novi zahtjev\n" +
			"/language - Promijeniti jezik\n" +
			"/cancel - Otkazati trenutni zahtjev\n" +
			"/help - Pomoć",
		LangEN: "📋 Available commands:\n\n" +
			"/new - Create a new request\n" +
			"/language - Change language\n" +
			"/cancel - Cancel current request\n" +
			"/help - Help",
	},

	"start_new_lead": {
		LangRU: "📝 Начинаем заполнение заявки.\n\n" +
			"Пожалуйста, укажите ваше имя и фамилию:",
		LangME: "📝 Počinjemo popunjavanje zahtjeva.\n\n" +
			"Molimo vas da unesete vaše ime i prezime:",
		LangEN: "📝 Starting a new request.\n\n" +
			"Please enter your first and last name:",
	},

	"ask_name": {
		LangRU: "👤 Введите ваше имя и фамилию:",
		LangME: "👤 Unesite vaše ime i prezime:",
		LangEN: "👤 Enter your first and last name:",
	},

	"ask_phone": {
		LangRU: "📞 Введите ваш номер телефона:\n\n" +
			"Формат: +382 XX XXX XXX или любой другой удобный формат.",
		LangME: "📞 Unesite vaš broj telefona:\n\n" +
			"Format: +382 XX XXX XXX ili bilo koji drugi format.",
		LangEN: "📞 Enter your phone number:\n\n" +
			"Format: +382 XX XXX XXX or any other convenient format.",
	},

	"ask_email": {
		LangRU: "✉️ Введите ваш email (или нажмите \"Пропустить\"):",
		LangME: "✉️ Unesite vaš email (ili pritisnite \"Preskočiti\"):",
		LangEN: "✉️ Enter your email (or press \"Skip\"):",
	},

	"ask_description": {
		LangRU: "📝 Опишите ваш проект:\n\n" +
			"Расскажите, какие работы вам нужны (минимум 10 символов).",
		LangME: "📝 Opišite vaš projekat:\n\n" +
			"Recite nam kakvi radovi su vam potrebni (minimum 10 znakova).",
		LangEN: "📝 Describe your project:\n\n" +
			"Tell us what work you need (minimum 10 characters).",
	},

	"ask_files": {
		LangRU: "📎 Прикрепите фото или документы (опционально):\n\n" +
			"Вы можете отправить фото, документы или видео.\n" +
			"Когда закончите, нажмите \"Готово\" или \"Пропустить\".",
		LangME: "📎 Priložite fotografije ili dokumente (opciono):\n\n" +
			"Možete poslati fotografije, dokumente ili video.\n" +
			"Kada završite, pritisnite \"Gotovo\" ili \"Preskočiti\".",
		LangEN: "📎 Attach photos or documents (optional):\n\n" +
			"You can send photos, documents or videos.\n" +
			"When done, press \"Done\" or \"Skip\".",
	},

	"confirm_old_data": {
		LangRU: "👤 У вас уже есть заявка.\n\n" +
			"Использовать эти данные?\n\n" +
			"📋 Имя: {full_name}\n" +
			"📞 Телефон: {phone}\n" +
			"✉️ Email: {email}",
		LangME: "👤 Već imate prijavu.\n\n" +
			"Koristiti ove podatke?\n\n" +
			"📋 Ime: {full_name}\n" +
			"📞 Telefon: {phone}\n" +
			"✉️ Email: {email}",
		LangEN: "👤 You already have an application.\n\n" +
			"Use this data?\n\n" +
			"📋 Name: {full_name}\n" +
			"📞 Phone: {phone}\n" +
			"✉️ Email: {email}",
	},

	"file_received": {
		LangRU: "✅ Файл получен! Можете отправить еще или нажмите \"Готово\".",
		LangME: "✅ Fajl primljen! Možete poslati još ili pritisnite \"Gotovo\".",
		LangEN: "✅ File received! You can send more or press \"Done\".",
	},

	"file_limit_reached": {
		LangRU: "⚠️ Достигнут лимит файлов ({max_files}).\n\n" +
			"Нажмите \"Готово\" чтобы продолжить.",
		LangME: "⚠️ Dostignut je limit fajlova ({max_files}).\n\n" +
			"Pritisnite \"Gotovo\" da nastavite.",
		LangEN: "⚠️ File limit reached ({max_files}).\n\n" +
			"Press \"Done\" to continue.",
	},

	"invalid_phone": {
		LangRU: "❌ Неверный формат телефона.\n\n" +
			"Пожалуйста, введите номер телефона (минимум 10 цифр).\n" +
			"Например: +382 67 123 456",
		LangME: "❌ Pogrešan format broja telefona.\n\n" +
			"Molimo unesite broj telefona (minimum 10 cifara).\n" +
			"Na primjer: +382 67 123 456",
		LangEN: "❌ Invalid phone format.\n\n" +
			"Please enter a phone number (minimum 10 digits).\n" +
			"Example: +382 67 123 456",
	},

	"invalid_email": {
		LangRU: "❌ Неверный формат email.\n\n" +
			"Пожалуйста, введите корректный email или нажмите \"Пропустить\".",
		LangME: "❌ Pogrešan format email-a.\n\n" +
			"Molimo unesite ispravan email ili pritisnite \"Preskočiti\".",
		LangEN: "❌ Invalid email format.\n\n" +
			"Please enter a valid email or press \"Skip\".",
	},

	"description_too_short": {
		LangRU: "❌ Описание слишком короткое.\n\n" +
			"Пожалуйста, опишите ваш проект подробнее (минимум 10 символов).",
		LangME: "❌ Opis je prekratak.\n\n" +
			"Molimo opišite vaš projekat detaljnije (minimum 10 znakova).",
		LangEN: "❌ Description is too short.\n\n" +
			"Please describe your project in more detail (minimum 10 characters).",
	},

	"preview_lead": {
		LangRU: "✅ Проверьте данные перед отправкой:\n\n" +
			"👤 Имя: {full_name}\n" +
			"📞 Телефон: {phone}\n" +
			"✉️ Email: {email}\n" +
			"📝 Описание проекта:\n{description}\n\n" +
			"Всё верно?",
		LangME: "✅ Provjerite podatke prije slanja:\n\n" +
			"👤 Ime: {full_name}\n" +
			"📞 Telefon: {phone}\n" +
			"✉️ Email: {email}\n" +
			"📝 Opis projekta:\n{description}\n\n" +
			"Da li je sve tačno?",
		LangEN: "✅ Review your information before submitting:\n\n" +
			"👤 Name: {full_name}\n" +
			"📞 Phone: {phone}\n" +
			"✉️ Email: {email}\n" +
			"📝 Project description:\n{description}\n\n" +
			"Is everything correct?",
	},

	"email_not_provided": {
		LangRU: "не указан",
		LangME: "nije navedeno",
		LangEN: "not provided",
	},

	"thank_you": {
		LangRU: "🎉 Спасибо! Ваша заявка принята.\n\n" +
			"Мы свяжемся с вами в ближайшее время.\n\n" +
			"Используйте кнопки ниже для управления заявками.",
		LangME: "🎉 Hvala! Vaš zahtjev je primljen.\n\n" +
			"Kontaktiraćemo vas uskoro.\n\n" +
			"Koristite dugmad ispod za upravljanje zahtjevima.",
		LangEN: "🎉 Thank you! Your request has been received.\n\n" +
			"We will contact you shortly.\n\n" +
			"Use buttons below to manage your requests.",
	},

	"my_leads": {
		LangRU: "📋 Ваши заявки:\n\n",
		LangME: "📋 Vaši zahtjevi:\n\n",
		LangEN: "📋 Your requests:\n\n",
	},

	"no_leads": {
		LangRU: "📋 У вас пока нет заявок.\n\n" +
			"Используйте /new чтобы создать первую заявку.",
		LangME: "📋 Još nemate zahtjeva.\n\n" +
			"Koristite /new da kreirate prvi zahtjev.",
		LangEN: "📋 You have no requests yet.\n\n" +
			"Use /new to create your first request.",
	},

	"choose_lead_to_cancel": {
		LangRU: "❌ Выберите заявку для отмены:",
		LangME: "❌ Izaberite zahtjev za otkazivanje:",
		LangEN: "❌ Choose a request to cancel:",
	},

	"confirm_cancel_lead": {
		LangRU: "⚠️ Вы уверены что хотите отменить эту заявку?\n\n" +
			"📋 Заявка #{lead_id}\n" +
			"📝 {description}\n" +
			"📅 {created_at}\n\n" +
			"Эта заявка будет удалена из базы данных.",
		LangME: "⚠️ Da li ste sigurni da želite otkazati ovaj zahtjev?\n\n" +
			"📋 Zahtjev #{lead_id}\n" +
			"📝 {description}\n" +
			"📅 {created_at}\n\n" +
			"Ovaj zahtjev će biti obrisan iz baze podataka.",
		LangEN: "⚠️ Are you sure you want to cancel this request?\n\n" +
			"📋 Request #{lead_id}\n" +
			"📝 {description}\n" +
			"📅 {created_at}\n\n" +
			"This request will be deleted from the database.",
	},

	"lead_cancelled": {
		LangRU: "✅ Заявка #{lead_id} успешно отменена и удалена из базы данных.",
		LangME: "✅ Zahtjev #{lead_id} je uspješno otkazan i obrisan iz baze podataka.",
		LangEN: "✅ Request #{lead_id} has been successfully cancelled and deleted from the database.",
	},

	"cancel_failed": {
		LangRU: "❌ Не удалось отменить заявку. Возможно она уже была удалена.",
		LangME: "❌ Nije moguće otkazati zahtjev. Možda je već obrisan.",
		LangEN: "❌ Failed to cancel request. It may have already been deleted.",
	},

	"cancelled": {
		LangRU: "❌ Заявка отменена.\n\n" +
			"Используйте /new для создания новой заявки.",
		LangME: "❌ Zahtjev je otkazan.\n\n" +
			"Koristite /new da kreirate novi zahtjev.",
		LangEN: "❌ Request cancelled.\n\n" +
			"Use /new to create a new request.",
	},

	"choose_field_to_edit": {
		LangRU: "✏️ Выберите поле для редактирования:",
		LangME: "✏️ Izaberite polje za izmjenu:",
		LangEN: "✏️ Choose a field to edit:",
	},

	"help_text": {
		LangRU: "❓ Помощь\n\n" +
			"📋 Доступные команды:\n\n" +
			"/start - Начало работы\n" +
			"/new - Создать новую заявку\n" +
			"/my_leads - Мои заявки\n" +
			"/language - Сменить язык\n" +
			"/cancel - Отменить текущую заявку\n" +
			"/help - Показать эту справку\n\n" +
			"💡 Как это работает:\n" +
			"1. Нажмите /new\n" +
			"2. Заполните форму (имя, телефон, email, описание)\n" +
			"3. Проверьте данные и отправьте\n" +
			"4. Мы получим вашу заявку и свяжемся с вами",
		LangME: "❓ Pomoć\n\n" +
			"📋 Dostupne komande:\n\n" +
			"/start - Početak rada\n" +
			"/new - Kreirati novi zahtjev\n" +
			"/my_leads - Moji zahtjevi\n" +
			"/language - Promijeniti jezik\n" +
			"/cancel - Otkazati trenutni zahtjev\n" +
			"/help - Prikazati ovu pomoć\n\n" +
			"💡 Kako to radi:\n" +
			"1. Pritisnite /new\n" +
			"2. Popunite formular (ime, telefon, email, opis)\n" +
			"3. Provjerite podatke i pošaljite\n" +
			"4. Primićemo vaš zahtjev i kontaktiraćemo vas",
		LangEN: "❓ Help\n\n" +
			"📋 Available commands:\n\n" +
			"/start - Start\n" +
			"/new - Create a new request\n" +
			"/my_leads - My requests\n" +
			"/language - Change language\n" +
			"/cancel - Cancel current request\n" +
			"/help - Show this help\n\n" +
			"💡 How it works:\n" +
			"1. Press /new\n" +
			"2. Fill out the form (name, phone, email, description)\n" +
			"3. Review and submit\n" +
			"4. We will receive your request and contact you",
	},

	"error_occurred": {
		LangRU: "❌ Произошла ошибка. Попробуйте снова или обратитесь в поддержку.",
		LangME: "❌ Došlo je do greške. Pokušajte ponovo ili kontaktirajte podršku.",
		LangEN: "❌ An error occurred. Please try again or contact support.",
	},

	"btn_send": {
		LangRU: "✅ Отправить",
		LangME: "✅ Poslati",
		LangEN: "✅ Send",
	},
	"btn_edit": {
		LangRU: "✏️ Изменить",
		LangME: "✏️ Izmjeniti",
		LangEN: "✏️ Edit",
	},
	"btn_skip": {
		LangRU: "⏭️ Пропустить",
		LangME: "⏭️ Preskočiti",
		LangEN: "⏭️ Skip",
	},
	"btn_cancel": {
		LangRU: "❌ Отменить",
		LangME: "❌ Otkazati",
		LangEN: "❌ Cancel",
	},
	"btn_name": {
		LangRU: "👤 Имя",
		LangME: "👤 Ime",
		LangEN: "👤 Name",
	},
	"btn_phone": {
		LangRU: "📞 Телефон",
		LangME: "📞 Telefon",
		LangEN: "📞 Phone",
	},
	"btn_email": {
		LangRU: "✉️ Email",
		LangME: "✉️ Email",
		LangEN: "✉️ Email",
	},
	"btn_description": {
		LangRU: "📝 Описание",
		LangME: "📝 Opis",
		LangEN: "📝 Description",
	},
	"btn_use_data": {
		LangRU: "✅ Использовать эти данные",
		LangME: "✅ Koristiti ove podatke",
		LangEN: "✅ Use this data",
	},
	"btn_change_data": {
		LangRU: "✏️ Изменить данные",
		LangME: "✏️ Promijeniti podatke",
		LangEN: "✏️ Change data",
	},
	"btn_done": {
		LangRU: "✅ Готово",
		LangME: "✅ Gotovo",
		LangEN: "✅ Done",
	},
	"btn_new_lead": {
		LangRU: "➕ Новая заявка",
		LangME: "➕ Novi zahtjev",
		LangEN: "➕ New request",
	},
	"btn_my_leads": {
		LangRU: "📋 Мои заявки",
		LangME: "📋 Moji zahtjevi",
		LangEN: "📋 My requests",
	},
	"btn_cancel_lead": {
		LangRU: "❌ Отменить заявку",
		LangME: "❌ Otkazati zahtjev",
		LangEN: "❌ Cancel request",
	},
	"btn_back": {
		LangRU: "◀️ Назад",
		LangME: "◀️ Nazad",
		LangEN: "◀️ Back",
	},
	"btn_confirm": {
		LangRU: "✅ Да, отменить",
		LangME: "✅ Da, otkazati",
		LangEN: "✅ Yes, cancel",
	},

	"admin_notification": {
		LangRU: "🧱 Новая заявка",
		LangME: "🧱 Novi zahtjev",
		LangEN: "🧱 New Request",
	},

	"change_language": {
		LangRU: "🌍 Выберите новый язык:",
		LangME: "🌍 Izaberite novi jezik:",
		LangEN: "🌍 Choose a new language:",
	},

	"language_changed": {
		LangRU: "✅ Язык успешно изменен!",
		LangME: "✅ Jezik je uspješno promijenjen!",
		LangEN: "✅ Language successfully changed!",
	},

	"btn_change_language": {
		LangRU: "🌍 Сменить язык",
		LangME: "🌍 Promijeniti jezik",
		LangEN: "🌍 Change language",
	},

	"language_change_warning": {
		LangRU: "⚠️ Внимание!\n\n" +
			"Вы сейчас заполняете форму заявки.\n" +
			"Если вы смените язык, текущая форма будет сброшена и вам придется заполнить ее заново.\n\n" +
			"Вы уверены, что хотите сменить язык?",
		LangME: "⚠️ Upozorenje!\n\n" +
			"Trenutno popunjavate formular zahtjeva.\n" +
			"Ako promijenite jezik, trenutni formular će biti poništen i moraćete ga popuniti ponovo.\n\n" +
			"Da li ste sigurni da želite promijeniti jezik?",
		LangEN: "⚠️ Warning!\n\n" +
			"You are currently filling out a request form.\n" +
			"If you change the language, the current form will be reset and you will have to fill it out again.\n\n" +
			"Are you sure you want to change the language?",
	},

	"btn_confirm_language_change": {
		LangRU: "✅ Да, сменить язык",
		LangME: "✅ Da, promijeniti jezik",
		LangEN: "✅ Yes, change language",
	},

	"btn_continue_form": {
		LangRU: "❌ Нет, продолжить заполнение",
		LangME: "❌ Ne, nastaviti popunjavanje",
		LangEN: "❌ No, continue filling",
	},
}
