package bank

import "najdimajstra/internal/model"

const (
	sk = model.LanguageSK
	en = model.LanguageEN

	urgent      = model.CategoryUrgent
	regular     = model.CategoryRegular
	realization = model.CategoryRealization
)

func defaultEntries() map[Key]string {
	return map[Key]string{
		// Category-neutral blocks

		{sk, NoCategory, KindGenericGreeting}: "Dobrý deň! Ako vám môžem pomôcť?",
		{en, NoCategory, KindGenericGreeting}: "Hello! How can I help you?",

		{sk, NoCategory, KindGenericApology}: "Prepáčte, vašu požiadavku sa mi nepodarilo spracovať. Skúste to prosím znova alebo vyberte typ služby.",
		{en, NoCategory, KindGenericApology}: "Sorry, I couldn't process your request. Please try again or choose a type of service.",

		{sk, NoCategory, KindSafetyHeader}: "⚠️ POZOR – ide o nebezpečnú situáciu! Najskôr zaistite bezpečnosť seba a ostatných:",
		{en, NoCategory, KindSafetyHeader}: "⚠️ WARNING – this is a dangerous situation! First make sure you and others are safe:",

		{sk, NoCategory, KindSafetyGas}: "• Uzavrite plyn na hlavnom uzávere. Otvorte okná a dvere a vyvetrajte. Nepoužívajte otvorený oheň, vypínače ani elektrické spotrebiče. Opustite priestor a volajte plynárenskú pohotovosť 0850 111 727 alebo tiesňovú linku 112.",
		{en, NoCategory, KindSafetyGas}: "• Shut off the gas at the main valve. Open the windows and doors to ventilate. Do not use open flames, light switches or electrical appliances. Leave the premises and call the gas emergency line 0850 111 727 or 112.",

		{sk, NoCategory, KindSafetySmoke}: "• Ak vidíte dym alebo oheň, okamžite opustite priestor a volajte hasičov na čísle 150 alebo 112. Elektrické zariadenia nikdy nehaste vodou.",
		{en, NoCategory, KindSafetySmoke}: "• If you see smoke or fire, leave the premises immediately and call the fire brigade on 150 or 112. Never use water on electrical equipment.",

		{sk, NoCategory, KindSafetySparks}: "• Nedotýkajte sa iskriaceho zariadenia, zásuvky ani vodičov. Ak je to bezpečné, vypnite hlavný istič.",
		{en, NoCategory, KindSafetySparks}: "• Do not touch the sparking appliance, socket or wires. If it is safe to do so, switch off the main circuit breaker.",

		{sk, NoCategory, KindSafetyFlooding}: "• Zatvorte hlavný uzáver vody. Ak voda zasahuje elektrické rozvody alebo zásuvky, vypnite hlavný istič a do zaplaveného priestoru nevstupujte.",
		{en, NoCategory, KindSafetyFlooding}: "• Close the main water valve. If water reaches wiring or sockets, switch off the main circuit breaker and do not enter the flooded area.",

		{sk, NoCategory, KindSafetyShortCircuit}: "• Vypnite hlavný istič a nezapínajte ho znova, kým inštaláciu neskontroluje elektrikár. Poškodené spotrebiče odpojte zo siete.",
		{en, NoCategory, KindSafetyShortCircuit}: "• Switch off the main circuit breaker and leave it off until an electrician has checked the installation. Unplug damaged appliances.",

		{sk, NoCategory, KindFoundOne}: "Našiel som 1 vhodného špecialistu. Jeho profil nájdete nižšie.",
		{en, NoCategory, KindFoundOne}: "I found 1 suitable specialist. See the profile below.",

		{sk, NoCategory, KindFoundMany}: "Našiel som %d vhodných špecialistov. Ich profily nájdete nižšie.",
		{en, NoCategory, KindFoundMany}: "I found %d suitable specialists. See their profiles below.",

		// Urgent

		{sk, urgent, KindGreeting}: "Dobrý deň! Som asistent pre urgentné opravy. Opíšte, čo sa stalo a kde sa nachádzate, a nájdem vám majstra, ktorý môže prísť čo najskôr.",
		{en, urgent, KindGreeting}: "Hello! I'm the urgent repair assistant. Describe what happened and where you are, and I'll find a master who can come as soon as possible.",

		{sk, urgent, KindGuidanceElectrical}: "Porucha elektriny: skontrolujte, či nevypadol istič alebo prúdový chránič. Ak vypadáva opakovane, už ho nezapínajte a počkajte na elektrikára.",
		{en, urgent, KindGuidanceElectrical}: "Power failure: check whether a circuit breaker or the residual current device has tripped. If it keeps tripping, leave it off and wait for an electrician.",

		{sk, urgent, KindGuidanceWater}: "Únik vody: zatvorte uzáver vody pre byt alebo celý dom, utrite vodu a odložte cenné veci z dosahu. Poškodenie si odfoťte pre poisťovňu.",
		{en, urgent, KindGuidanceWater}: "Water leak: close the water valve for the flat or the whole house, mop up the water and move valuables out of reach. Take photos of the damage for your insurer.",

		{sk, urgent, KindGuidanceGasHeating}: "Plyn a kúrenie: pri poruche kotol vypnite a zatvorte prívod plynu ku kotlu. Zariadenie znova nespúšťajte, kým ho neskontroluje plynár.",
		{en, urgent, KindGuidanceGasHeating}: "Gas and heating: if the boiler fails, switch it off and close its gas supply. Do not restart it until a gas technician has inspected it.",

		{sk, urgent, KindGuidanceClimate}: "Klimatizácia a vetranie: zariadenie vypnite a odpojte zo siete. Ak z jednotky tečie voda alebo cítiť zápach spáleniny, nepoužívajte ju.",
		{en, urgent, KindGuidanceClimate}: "Air conditioning and ventilation: switch the unit off and unplug it. If it leaks water or smells burnt, do not use it.",

		{sk, urgent, KindGeneral}: "Všeobecné odporúčania: zostaňte v bezpečí, nepokúšajte sa o opravu svojpomocne a pripravte si presnú adresu a popis problému pre majstra.",
		{en, urgent, KindGeneral}: "General advice: stay safe, do not attempt the repair yourself, and have your exact address and a description of the problem ready for the master.",

		{sk, urgent, KindSpecifyMore}: "Aby som našiel majstra, ktorý príde čo najskôr, napíšte prosím mesto alebo adresu a stručne opíšte, čo sa pokazilo (elektrina, voda, plyn, kúrenie...).",
		{en, urgent, KindSpecifyMore}: "To find a master who can come as soon as possible, please tell me your city or address and briefly describe what broke (electricity, water, gas, heating...).",

		// Regular

		{sk, regular, KindGreeting}: "Dobrý deň! Pomôžem vám nájsť majstra na bežnú opravu, servis alebo údržbu. Napíšte, čo potrebujete a v ktorom meste.",
		{en, regular, KindGreeting}: "Hello! I'll help you find a master for a routine repair, service or maintenance job. Tell me what you need and in which city.",

		{sk, regular, KindGuidanceElectrical}: "Elektroinštalácia: na výmenu zásuviek, svetiel alebo ističov si zavolajte elektrikára s platným oprávnením a vyžiadajte si revíznu správu.",
		{en, regular, KindGuidanceElectrical}: "Electrical work: for replacing sockets, lights or breakers hire a licensed electrician and ask for an inspection report.",

		{sk, regular, KindGuidanceWater}: "Voda a odpad: pri kvapkajúcej batérii, upchatom odpade či výmene WC pomôže inštalatér. Pripravte si fotografiu problému.",
		{en, regular, KindGuidanceWater}: "Water and drains: a plumber can fix a dripping tap, a blocked drain or replace a toilet. Have a photo of the problem ready.",

		{sk, regular, KindGuidanceGasHeating}: "Kúrenie a plyn: servis kotla sa odporúča raz ročne, ideálne pred vykurovacou sezónou. Pripravte si typ a značku kotla.",
		{en, regular, KindGuidanceGasHeating}: "Heating and gas: a boiler should be serviced once a year, ideally before the heating season. Have the boiler make and model ready.",

		{sk, regular, KindGuidanceClimate}: "Klimatizácia: pravidelné čistenie a kontrola chladiva raz ročne predlžujú životnosť jednotky. Uveďte typ a počet jednotiek.",
		{en, regular, KindGuidanceClimate}: "Air conditioning: yearly cleaning and a refrigerant check extend the life of the unit. Mention the type and number of units.",

		{sk, regular, KindGeneral}: "Odporúčania: porovnajte hodnotenia majstrov, dohodnite si cenu vopred a uschovajte si doklad o vykonanej práci.",
		{en, regular, KindGeneral}: "Tips: compare the masters' ratings, agree on the price in advance and keep a receipt for the work done.",

		{sk, regular, KindSpecifyMore}: "Upresnite prosím: v ktorej lokalite sa nachádzate, kedy vám vyhovuje návšteva majstra (dni a hodiny) a aký máte rozpočet.",
		{en, regular, KindSpecifyMore}: "Please specify: your location, when a visit suits you (days and hours) and your budget.",

		// Realization

		{sk, realization, KindGreeting}: "Dobrý deň! Plánujete stavbu, rekonštrukciu alebo väčšiu realizáciu? Opíšte projekt, lokalitu a termín a odporučím vám vhodných odborníkov.",
		{en, realization, KindGreeting}: "Hello! Planning a build, a renovation or a larger project? Describe the project, its location and timeline and I'll recommend suitable professionals.",

		{sk, realization, KindGuidanceElectrical}: "Elektroinštalácia pri stavbe: rozvody, počet okruhov a zásuviek naplánujte ešte pred omietkami. Na záver budete potrebovať revíznu správu.",
		{en, realization, KindGuidanceElectrical}: "Electrical installation in a build: plan the wiring, circuits and sockets before plastering. You will need an inspection report at the end.",

		{sk, realization, KindGuidanceWater}: "Rozvody vody a kanalizácie: navrhnite ich spolu s dispozíciou kúpeľne a kuchyne a myslite na prípojky a revízne otvory.",
		{en, realization, KindGuidanceWater}: "Water and sewage: design the pipework together with the bathroom and kitchen layout, and plan for connections and access points.",

		{sk, realization, KindGuidanceGasHeating}: "Vykurovanie: typ zdroja tepla (plynový kotol, tepelné čerpadlo) a podlahové kúrenie zvážte už vo fáze projektu.",
		{en, realization, KindGuidanceGasHeating}: "Heating: decide on the heat source (gas boiler, heat pump) and underfloor heating while the project is still being designed.",

		{sk, realization, KindGuidanceClimate}: "Klimatizácia a rekuperácia: prípravu rozvodov urobte počas hrubej stavby, dodatočná montáž je výrazne drahšia.",
		{en, realization, KindGuidanceClimate}: "Air conditioning and heat recovery: route the ducts during the shell construction, retrofitting is considerably more expensive.",

		{sk, realization, KindGeneral}: "Odporúčania k realizácii: majte pripravený projekt a stavebné povolenie, vyžiadajte si aspoň tri cenové ponuky a harmonogram prác dohodnite písomne.",
		{en, realization, KindGeneral}: "Project tips: have your plans and building permit ready, ask for at least three quotes and agree on the schedule in writing.",

		{sk, realization, KindSpecifyMore}: "Aby som vám odporučil vhodných odborníkov, upresnite prosím lokalitu stavby, rozsah projektu, plánovaný termín a rozpočet.",
		{en, realization, KindSpecifyMore}: "To recommend suitable professionals, please specify the site location, the scope of the project, the planned timeline and your budget.",
	}
}
